package pubkey

import "fmt"

// BatchResult reports validation of the public keys of a P2MS output.
//
// Beyond the per-key verdicts it tracks two patterns that matter when
// classifying an output: duplicate keys (usually a wallet error, not data
// carrying) and all-zero placeholder keys used to pad 1-of-2 multisig.
// Field names follow the JSON schema of the surrounding analysis pipeline.
type BatchResult struct {
	// AllValidPoints is true if every non-null key is a valid EC point.
	AllValidPoints bool `json:"all_valid_ec_points"`

	// HasDuplicates is true if the same key appears more than once.
	HasDuplicates bool `json:"has_duplicate_keys"`

	// DuplicateCount is the number of repeated occurrences found.
	DuplicateCount int `json:"duplicate_count"`

	// InvalidKeyIndices holds the 0-based indices of invalid keys.
	InvalidKeyIndices []int `json:"invalid_key_indices"`

	// ValidationErrors holds a human-readable message per invalid key.
	ValidationErrors []string `json:"validation_errors"`

	// TotalKeys is the number of keys examined.
	TotalKeys int `json:"total_keys"`

	// ValidKeys is the number of keys that are valid EC points. Null keys
	// are tracked separately and never counted here.
	ValidKeys int `json:"valid_keys"`

	// NullKeyCount is the number of all-zero placeholder keys.
	NullKeyCount int `json:"null_key_count"`

	// NullKeyIndices holds the 0-based indices of null keys.
	NullKeyIndices []int `json:"null_key_indices"`
}

func newBatchResult(totalKeys int) *BatchResult {
	return &BatchResult{
		AllValidPoints:    true,
		InvalidKeyIndices: []int{},
		ValidationErrors:  []string{},
		NullKeyIndices:    []int{},
		TotalKeys:         totalKeys,
	}
}

func (r *BatchResult) addInvalidKey(index int, reason string) {
	r.AllValidPoints = false
	r.InvalidKeyIndices = append(r.InvalidKeyIndices, index)
	r.ValidationErrors = append(r.ValidationErrors, fmt.Sprintf("Key %d: %s", index, reason))
}

func (r *BatchResult) addNullKey(index int) {
	r.NullKeyCount++
	r.NullKeyIndices = append(r.NullKeyIndices, index)
}

// Summary returns a one-line human-readable classification of the batch.
func (r *BatchResult) Summary() string {
	if !r.AllValidPoints {
		return fmt.Sprintf("%d/%d keys invalid EC points - definite data-carrying",
			len(r.InvalidKeyIndices), r.TotalKeys)
	}
	switch {
	case r.NullKeyCount > 0:
		return fmt.Sprintf("%d real EC points + %d null keys (null-padded multisig)",
			r.ValidKeys, r.NullKeyCount)
	case r.HasDuplicates:
		return fmt.Sprintf("All %d keys valid EC points, %d duplicates found (likely wallet error)",
			r.TotalKeys, r.DuplicateCount)
	default:
		return fmt.Sprintf("All %d keys valid EC points, standard multisig", r.TotalKeys)
	}
}

// isNullPubKey reports whether the bytes are a correctly sized key of all
// zero bytes. Such placeholders appear in some 1-of-2 multisig outputs;
// they are not EC points but keep the output spendable when enough real
// keys remain.
func isNullPubKey(serialized []byte) bool {
	if len(serialized) != CompressedPubKeyLen && len(serialized) != UncompressedPubKeyLen {
		return false
	}
	for _, b := range serialized {
		if b != 0x00 {
			return false
		}
	}
	return true
}

// ValidateBatch validates a list of public key hex strings, typically the
// key list of a single P2MS script. Null keys are recognized before curve
// validation so they are reported as placeholders rather than invalid
// points.
func ValidateBatch(pubKeyHexes []string) *BatchResult {
	result := newBatchResult(len(pubKeyHexes))
	seen := make(map[string]struct{}, len(pubKeyHexes))
	duplicates := 0

	for index, pubKeyHex := range pubKeyHexes {
		if _, ok := seen[pubKeyHex]; ok {
			duplicates++
		} else {
			seen[pubKeyHex] = struct{}{}
		}

		serialized, err := decodeHex(pubKeyHex)
		if err != nil {
			result.addInvalidKey(index, fmt.Sprintf("Invalid hex: %v", err))
			continue
		}

		if isNullPubKey(serialized) {
			result.addNullKey(index)
			continue
		}

		if err := Check(serialized); err != nil {
			result.addInvalidKey(index, fmt.Sprintf("Not a valid EC point: %v (bytes: %d)",
				err, len(serialized)))
			continue
		}
		result.ValidKeys++
	}

	if duplicates > 0 {
		result.HasDuplicates = true
		result.DuplicateCount = duplicates
	}
	return result
}
