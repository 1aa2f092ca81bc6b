package pubkey

import "encoding/json"

// ValidateFromMetadata extracts the "pubkeys" array from a P2MS metadata
// JSON object and batch-validates it. The second return is false when the
// object carries no usable pubkey list: malformed JSON, a missing or empty
// array, or an array with no string entries. Non-string entries are
// skipped, not treated as invalid keys.
func ValidateFromMetadata(metadata json.RawMessage) (*BatchResult, bool) {
	var payload struct {
		PubKeys []json.RawMessage `json:"pubkeys"`
	}
	if err := json.Unmarshal(metadata, &payload); err != nil {
		return nil, false
	}

	pubKeyHexes := make([]string, 0, len(payload.PubKeys))
	for _, raw := range payload.PubKeys {
		// Unmarshal of a JSON null into a string is a silent no-op, so
		// gate on the token actually being a string.
		if len(raw) == 0 || raw[0] != '"' {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			pubKeyHexes = append(pubKeyHexes, s)
		}
	}
	if len(pubKeyHexes) == 0 {
		return nil, false
	}
	return ValidateBatch(pubKeyHexes), true
}
