package radix

import "math/big"

// Encode renders n in base using uppercase digits with no leading zeros
// Zero is always "0" whatever the sign flag says. Only Negative decides the sign;
// the magnitude's own sign is ignored
func Encode(n SignedNumber, base Radix) (string, error) {
	if err := checkBase(base, ""); err != nil {
		return "", err
	}
	if n.IsZero() {
		return "0", nil
	}

	mag := new(big.Int).Abs(n.Magnitude)
	b := big.NewInt(int64(base))
	rem := new(big.Int)

	// least significant digit first, reversed below
	buf := make([]byte, 0, mag.BitLen()+1)
	for mag.Sign() > 0 {
		mag.QuoRem(mag, b, rem)
		buf = append(buf, CharOf(int(rem.Int64())))
	}
	if n.Negative {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}
