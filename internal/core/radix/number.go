package radix

import "math/big"

// SignedNumber is a sign flag plus a non-negative magnitude
// Zero is never negative when built by this package
type SignedNumber struct {
	Negative  bool
	Magnitude *big.Int
}

// IsZero reports whether the magnitude is zero or unset
func (n SignedNumber) IsZero() bool {
	return n.Magnitude == nil || n.Magnitude.Sign() == 0
}

// Sign returns -1, 0 or 1
func (n SignedNumber) Sign() int {
	if n.IsZero() {
		return 0
	}
	if n.Negative {
		return -1
	}
	return 1
}

// BigInt returns a signed copy of the value
func (n SignedNumber) BigInt() *big.Int {
	out := new(big.Int)
	if n.Magnitude != nil {
		out.Abs(n.Magnitude)
	}
	if n.Negative {
		out.Neg(out)
	}
	return out
}

// FromBigInt splits x into sign and magnitude. A nil x is zero
func FromBigInt(x *big.Int) SignedNumber {
	if x == nil {
		return SignedNumber{Magnitude: new(big.Int)}
	}
	mag := new(big.Int).Abs(x)
	return SignedNumber{Negative: x.Sign() < 0, Magnitude: mag}
}
