package radix

import "fmt"

const upperDigits = "0123456789ABCDEF"

// ValueOf maps one digit character to its value: 0-9 to 0..9, A-F and a-f to 10..15
// Anything else fails with InvalidCharacter; the caller fills in the position
func ValueOf(c rune) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	}
	return 0, &Error{Kind: KindInvalidCharacter, Char: c}
}

// CharOf returns the uppercase character for a digit value in 0..15
// Out of range values are a programming error and panic
func CharOf(v int) byte {
	if v < 0 || v > 15 {
		panic(fmt.Sprintf("radix: digit value %d out of range 0..15", v))
	}
	return upperDigits[v]
}
