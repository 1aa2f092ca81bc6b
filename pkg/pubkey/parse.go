package pubkey

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// Serialized public key lengths.
const (
	// CompressedPubKeyLen is the byte length of a compressed public key:
	// one header byte plus the 32-byte x coordinate.
	CompressedPubKeyLen = 33

	// UncompressedPubKeyLen is the byte length of an uncompressed public
	// key: one header byte plus the 32-byte x and y coordinates.
	UncompressedPubKeyLen = 65
)

// Header bytes of the serialized forms.
const (
	headerEvenY        byte = 0x02
	headerOddY         byte = 0x03
	headerUncompressed byte = 0x04
)

// encoding is the classified form of a serialized public key. The
// compressed form carries x and the expected oddness of y; the uncompressed
// form carries both coordinates and y is non-nil.
//
// Coordinates are the raw big-endian integers from the wire and may equal
// or exceed the field prime. They are handed to the modular arithmetic
// unreduced on purpose; see the leniency note on Validate.
type encoding struct {
	x    *big.Int
	y    *big.Int
	oddY bool
}

// decodeHex decodes hex input into bytes, tolerating an optional "0x" or
// "0X" prefix. Decode failures come back as ErrMalformedHex.
func decodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, validationError(ErrMalformedHex,
			fmt.Sprintf("invalid pubkey hex: %v", err))
	}
	return b, nil
}

// parsePubKeyBytes classifies serialized bytes as a compressed or
// uncompressed public key encoding. It checks length and header byte only;
// curve membership is decided later.
func parsePubKeyBytes(serialized []byte) (*encoding, error) {
	switch len(serialized) {
	case CompressedPubKeyLen:
		header := serialized[0]
		if header != headerEvenY && header != headerOddY {
			return nil, validationError(ErrUnsupportedPrefix,
				fmt.Sprintf("invalid compressed pubkey header 0x%02x", header))
		}
		return &encoding{
			x:    new(big.Int).SetBytes(serialized[1:]),
			oddY: header == headerOddY,
		}, nil

	case UncompressedPubKeyLen:
		if serialized[0] != headerUncompressed {
			return nil, validationError(ErrUnsupportedPrefix,
				fmt.Sprintf("invalid uncompressed pubkey header 0x%02x", serialized[0]))
		}
		return &encoding{
			x: new(big.Int).SetBytes(serialized[1:33]),
			y: new(big.Int).SetBytes(serialized[33:]),
		}, nil
	}

	return nil, validationError(ErrUnsupportedLength,
		fmt.Sprintf("malformed pubkey: invalid length %d", len(serialized)))
}
