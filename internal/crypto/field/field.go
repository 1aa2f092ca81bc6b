// Package field provides modular arithmetic over the secp256k1 field prime.
//
// The helpers here are the minimum needed to decide curve membership of a
// public key: modular exponentiation, congruence checks, and the square-root
// construction that works for this specific prime. There is deliberately no
// point type and no point arithmetic.
package field

import "math/big"

var (
	// P is the secp256k1 field prime, 2^256 - 2^32 - 977.
	// See https://www.secg.org/sec2-v2.pdf, section 2.4.1.
	P = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// B is the constant term of the curve equation y² = x³ + 7.
	B = big.NewInt(7)

	// sqrtExp is (P+1)/4, cached so SqrtCandidate does not recompute it.
	sqrtExp = mustHex("3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFBFFFFF0C")

	three = big.NewInt(3)
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: invalid hex constant " + s)
	}
	return n
}

// ModPow returns base^exponent mod modulus. Inputs are treated as
// non-negative and may be wider than the modulus; the result is always a
// reduced representative in [0, modulus).
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, modulus)
}

// Congruent reports whether a ≡ b (mod modulus). The difference is reduced
// with Euclidean Mod semantics, so a < b cannot produce a negative
// remainder.
func Congruent(a, b, modulus *big.Int) bool {
	d := new(big.Int).Sub(a, b)
	return d.Mod(d, modulus).Sign() == 0
}

// RHS evaluates the right-hand side of the curve equation, (x³ + 7) mod P.
func RHS(x *big.Int) *big.Int {
	y2 := ModPow(x, three, P)
	y2.Add(y2, B)
	return y2.Mod(y2, P)
}

// SqrtCandidate returns a^((P+1)/4) mod P. Because P ≡ 3 (mod 4), this is a
// genuine square root of a whenever a is a quadratic residue. For a
// non-residue the exponentiation still yields a value, so callers must
// square the result and compare it against a before trusting it.
func SqrtCandidate(a *big.Int) *big.Int {
	return ModPow(a, sqrtExp, P)
}
