package radix

import (
	"math/big"
	"strings"
)

// Decode parses a signed digit string in base
//
// Surrounding whitespace is trimmed and a single leading '-' marks a negative value
// Letters are accepted in either case. An all-zero input yields non-negative zero
func Decode(input string, base Radix) (SignedNumber, error) {
	if err := checkBase(base, ""); err != nil {
		return SignedNumber{}, err
	}

	s := strings.TrimSpace(input)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return SignedNumber{}, &Error{Kind: KindEmptyInput, Base: base}
	}

	acc := new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)
	for pos, c := range s {
		v, err := ValueOf(c)
		if err != nil {
			return SignedNumber{}, &Error{Kind: KindInvalidCharacter, Base: base, Char: c, Pos: pos}
		}
		if v >= int(base) {
			return SignedNumber{}, &Error{Kind: KindDigitOutOfRange, Base: base, Char: c, Pos: pos}
		}
		acc.Mul(acc, b)
		acc.Add(acc, d.SetInt64(int64(v)))
	}

	if acc.Sign() == 0 {
		neg = false
	}
	return SignedNumber{Negative: neg, Magnitude: acc}, nil
}
