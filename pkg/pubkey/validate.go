// Package pubkey decides whether a byte string encodes a valid point on the
// secp256k1 curve used by Bitcoin public keys.
//
// Keys found in P2MS (bare multisig) outputs are frequently not keys at all
// but arbitrary embedded data; such fake keys are byte strings of the right
// shape whose coordinates do not satisfy y² = x³ + 7 (mod p). This package
// answers exactly that question and nothing else: no point arithmetic, no
// address derivation, no signature handling.
package pubkey

import (
	"math/big"

	"github.com/p2ms-research/pubkeyverify/internal/crypto/field"
)

// Validate reports whether the hex string encodes a valid point on the
// secp256k1 curve. The string may carry an optional "0x"/"0X" prefix.
// Malformed input of any kind is reported as invalid, never as an error or
// a panic.
//
// Coordinates that are numerically >= the field prime are not rejected;
// the modular arithmetic reduces them implicitly, so an over-field x whose
// reduced value lies on the curve validates as true. Stricter readings of
// the SEC 1 encoding would reject these, but the established behavior of
// the surrounding analysis pipeline is the lenient one.
func Validate(pubKeyHex string) bool {
	serialized, err := decodeHex(pubKeyHex)
	if err != nil {
		return false
	}
	return ValidateBytes(serialized)
}

// ValidateBytes is Validate for callers that already hold raw bytes.
func ValidateBytes(serialized []byte) bool {
	return Check(serialized) == nil
}

// Check classifies and validates serialized public key bytes. It returns
// nil for a valid on-curve encoding and an Error wrapping the specific
// ErrorKind for everything else. Validate collapses this to a bool; Check
// exists so diagnostics and tests can see which check failed.
func Check(serialized []byte) error {
	enc, err := parsePubKeyBytes(serialized)
	if err != nil {
		return err
	}
	if enc.y != nil {
		return checkUncompressed(enc.x, enc.y)
	}
	return checkCompressed(enc.x, enc.oddY)
}

// checkCompressed recovers a y coordinate for x and verifies it matches the
// oddness requested by the header byte.
func checkCompressed(x *big.Int, oddY bool) error {
	// y² = x³ + 7 mod p
	ySquared := field.RHS(x)

	// Candidate root via the (p+1)/4 exponent. The exponentiation yields
	// some value for every input; only squaring it back distinguishes a
	// real root from a non-residue.
	y := field.SqrtCandidate(ySquared)
	if !field.Congruent(new(big.Int).Mul(y, y), ySquared, field.P) {
		return validationError(ErrNotOnCurve,
			"x coordinate is not on the curve: x³ + 7 has no square root")
	}

	// The two roots y and p-y have opposite oddness since p is odd. Take
	// the one the header asks for.
	if isOdd(y) != oddY {
		y = new(big.Int).Sub(field.P, y)
	}

	// Invariant guard: the selected root must carry the requested oddness.
	if isOdd(y) != oddY {
		return validationError(ErrParityMismatch,
			"recovered y coordinate does not match the requested oddness")
	}
	return nil
}

// checkUncompressed verifies the curve equation directly against the
// supplied coordinates.
func checkUncompressed(x, y *big.Int) error {
	ySquared := new(big.Int).Mul(y, y)
	if !field.Congruent(ySquared, field.RHS(x), field.P) {
		return validationError(ErrNotOnCurve,
			"point coordinates do not satisfy the curve equation")
	}
	return nil
}

func isOdd(n *big.Int) bool {
	return n.Bit(0) == 1
}
