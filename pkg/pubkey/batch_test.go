package pubkey

import (
	"encoding/json"
	"strings"
	"testing"
)

// A valid uncompressed/compressed pair sharing the same x coordinate.
const (
	batchValidUncompressed = "04a39b9e4fbd213ef24bb9be69de4a118dd0644082e47c01fd9159d38637b83fbc" +
		"dc115a5d6e970586a012d1cfe3e3a8b1a3d04e763bdc5a071c0e827c0bd834a5"
	batchValidCompressed = "02a39b9e4fbd213ef24bb9be69de4a118dd0644082e47c01fd9159d38637b83fbc"
)

func TestValidateBatchValidKeys(t *testing.T) {
	result := ValidateBatch([]string{batchValidUncompressed, batchValidCompressed})

	if !result.AllValidPoints {
		t.Fatalf("expected all valid, got errors: %v", result.ValidationErrors)
	}
	if result.ValidKeys != 2 {
		t.Errorf("ValidKeys = %d, want 2", result.ValidKeys)
	}
	if result.HasDuplicates {
		t.Error("unexpected duplicate flag")
	}
	if len(result.InvalidKeyIndices) != 0 {
		t.Errorf("InvalidKeyIndices = %v, want empty", result.InvalidKeyIndices)
	}
}

func TestValidateBatchDuplicates(t *testing.T) {
	result := ValidateBatch([]string{batchValidUncompressed, batchValidUncompressed})

	if !result.AllValidPoints {
		t.Fatal("duplicates of a valid key are still valid points")
	}
	if !result.HasDuplicates {
		t.Fatal("duplicate flag not set")
	}
	if result.DuplicateCount != 1 {
		t.Errorf("DuplicateCount = %d, want 1", result.DuplicateCount)
	}
	if result.ValidKeys != 2 {
		t.Errorf("ValidKeys = %d, want 2", result.ValidKeys)
	}
}

func TestValidateBatchInvalidHex(t *testing.T) {
	result := ValidateBatch([]string{"not_hex_at_all"})

	if result.AllValidPoints {
		t.Fatal("invalid hex reported as valid")
	}
	if result.ValidKeys != 0 {
		t.Errorf("ValidKeys = %d, want 0", result.ValidKeys)
	}
	if len(result.InvalidKeyIndices) != 1 || result.InvalidKeyIndices[0] != 0 {
		t.Errorf("InvalidKeyIndices = %v, want [0]", result.InvalidKeyIndices)
	}
	if len(result.ValidationErrors) == 0 {
		t.Error("expected a validation error message")
	}
}

func TestValidateBatchInvalidPoint(t *testing.T) {
	// Correct shape but x³ + 7 has no square root.
	result := ValidateBatch([]string{"03" + strings.Repeat("00", 32)})

	if result.AllValidPoints {
		t.Fatal("off-curve key reported as valid")
	}
	if result.ValidKeys != 0 {
		t.Errorf("ValidKeys = %d, want 0", result.ValidKeys)
	}
	if len(result.InvalidKeyIndices) != 1 || result.InvalidKeyIndices[0] != 0 {
		t.Errorf("InvalidKeyIndices = %v, want [0]", result.InvalidKeyIndices)
	}
}

func TestValidateBatchMixed(t *testing.T) {
	result := ValidateBatch([]string{
		batchValidUncompressed,
		"03" + strings.Repeat("00", 32),
	})

	if result.AllValidPoints {
		t.Fatal("mixed batch reported as all valid")
	}
	if result.ValidKeys != 1 {
		t.Errorf("ValidKeys = %d, want 1", result.ValidKeys)
	}
	if len(result.InvalidKeyIndices) != 1 || result.InvalidKeyIndices[0] != 1 {
		t.Errorf("InvalidKeyIndices = %v, want [1]", result.InvalidKeyIndices)
	}
}

func TestValidateBatchNullKeys(t *testing.T) {
	nullCompressed := strings.Repeat("00", 33)
	nullUncompressed := strings.Repeat("00", 65)

	result := ValidateBatch([]string{batchValidCompressed, nullCompressed, nullUncompressed})

	if !result.AllValidPoints {
		t.Fatalf("null keys must not mark the batch invalid: %v", result.ValidationErrors)
	}
	if result.ValidKeys != 1 {
		t.Errorf("ValidKeys = %d, want 1 (nulls tracked separately)", result.ValidKeys)
	}
	if result.NullKeyCount != 2 {
		t.Errorf("NullKeyCount = %d, want 2", result.NullKeyCount)
	}
	if len(result.NullKeyIndices) != 2 || result.NullKeyIndices[0] != 1 || result.NullKeyIndices[1] != 2 {
		t.Errorf("NullKeyIndices = %v, want [1 2]", result.NullKeyIndices)
	}
}

func TestIsNullPubKey(t *testing.T) {
	if !isNullPubKey(make([]byte, 33)) {
		t.Error("33 zero bytes should be a null key")
	}
	if !isNullPubKey(make([]byte, 65)) {
		t.Error("65 zero bytes should be a null key")
	}
	if isNullPubKey(make([]byte, 32)) {
		t.Error("wrong length must not count as a null key")
	}
	b := make([]byte, 33)
	b[32] = 0x01
	if isNullPubKey(b) {
		t.Error("non-zero byte must not count as a null key")
	}
}

func TestBatchSummaries(t *testing.T) {
	standard := ValidateBatch([]string{batchValidCompressed, batchValidUncompressed})
	if got := standard.Summary(); !strings.Contains(got, "standard multisig") {
		t.Errorf("standard summary = %q", got)
	}

	dup := ValidateBatch([]string{batchValidUncompressed, batchValidUncompressed})
	if got := dup.Summary(); !strings.Contains(got, "duplicates") ||
		!strings.Contains(got, "wallet error") {
		t.Errorf("duplicate summary = %q", got)
	}

	padded := ValidateBatch([]string{batchValidCompressed, strings.Repeat("00", 33)})
	if got := padded.Summary(); !strings.Contains(got, "null-padded multisig") {
		t.Errorf("null-padded summary = %q", got)
	}

	carrying := ValidateBatch([]string{"03" + strings.Repeat("00", 32)})
	if got := carrying.Summary(); !strings.Contains(got, "data-carrying") {
		t.Errorf("data-carrying summary = %q", got)
	}
}

func TestBatchResultJSON(t *testing.T) {
	result := ValidateBatch([]string{batchValidCompressed, "bad"})

	out, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, field := range []string{
		"all_valid_ec_points", "has_duplicate_keys", "invalid_key_indices",
		"validation_errors", "total_keys", "valid_keys", "null_key_count",
	} {
		if !strings.Contains(string(out), field) {
			t.Errorf("JSON output missing field %q: %s", field, out)
		}
	}
}

func TestValidateFromMetadata(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
		wantOK   bool
		wantAll  bool
	}{
		{"valid keys", `{"pubkeys": ["` + batchValidCompressed + `"]}`, true, true},
		{"invalid key", `{"pubkeys": ["03` + strings.Repeat("00", 32) + `"]}`, true, false},
		{"missing pubkeys", `{"script_type": "p2ms"}`, false, false},
		{"empty array", `{"pubkeys": []}`, false, false},
		{"no string entries", `{"pubkeys": [1, 2, 3]}`, false, false},
		{"malformed json", `{"pubkeys": [`, false, false},
	}
	for _, tt := range tests {
		result, ok := ValidateFromMetadata(json.RawMessage(tt.metadata))
		if ok != tt.wantOK {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && result.AllValidPoints != tt.wantAll {
			t.Errorf("%s: AllValidPoints = %v, want %v", tt.name, result.AllValidPoints, tt.wantAll)
		}
	}
}

func TestValidateFromMetadataSkipsNonStrings(t *testing.T) {
	metadata := `{"pubkeys": [42, "` + batchValidCompressed + `", null]}`

	result, ok := ValidateFromMetadata(json.RawMessage(metadata))
	if !ok {
		t.Fatal("expected a result when at least one string entry exists")
	}
	if result.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1 (non-strings skipped)", result.TotalKeys)
	}
	if !result.AllValidPoints {
		t.Errorf("AllValidPoints = false: %v", result.ValidationErrors)
	}
}
