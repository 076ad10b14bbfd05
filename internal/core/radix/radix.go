// Package radix converts signed digit strings between bases 2, 8, 10 and 16
//
// Every conversion goes through a SignedNumber: the input is decoded once in its source
// base and encoded again in the target base, so N bases need N decoders and N encoders
// rather than N*N pairwise converters. Magnitudes are math/big integers so there is no
// width limit. Everything in this package is pure and safe for concurrent use
package radix

import (
	"strconv"
	"strings"
)

// Radix is a supported numeric base
type Radix int

// Supported bases
const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

var supported = [...]Radix{Binary, Octal, Decimal, Hexadecimal}

// Supported returns the supported bases in ascending order
func Supported() []Radix {
	out := make([]Radix, len(supported))
	copy(out, supported[:])
	return out
}

// Valid reports whether r is one of 2, 8, 10 or 16
func (r Radix) Valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// String renders the base as a decimal number, e.g. "16"
func (r Radix) String() string { return strconv.Itoa(int(r)) }

// Name returns the lower case name of the base, or "" when unsupported
func (r Radix) Name() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return ""
}

// ParseRadix accepts a decimal base ("2", "8", "10", "16") or a name
// (bin, binary, oct, octal, dec, decimal, hex, hexadecimal), case-insensitive
func ParseRadix(s string) (Radix, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "bin", "binary":
		return Binary, nil
	case "oct", "octal":
		return Octal, nil
	case "dec", "decimal":
		return Decimal, nil
	case "hex", "hexadecimal":
		return Hexadecimal, nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, &Error{Kind: KindUnsupportedBase, Text: s}
	}
	r := Radix(n)
	if !r.Valid() {
		return 0, &Error{Kind: KindUnsupportedBase, Base: r, Text: s}
	}
	return r, nil
}

// checkBase fails with UnsupportedBase when r is outside the supported set
func checkBase(r Radix, role string) error {
	if r.Valid() {
		return nil
	}
	return &Error{Kind: KindUnsupportedBase, Base: r, Role: role}
}
