package radix

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind tags a conversion failure. The set is closed: callers switch over
// all four values and treat anything else as a bug
type Kind uint8

const (
	// KindUnsupportedBase is a source or target base outside 2, 8, 10, 16
	KindUnsupportedBase Kind = iota + 1
	// KindEmptyInput is an empty or whitespace only input, or a lone sign
	KindEmptyInput
	// KindInvalidCharacter is a character outside 0-9, A-F, a-f
	KindInvalidCharacter
	// KindDigitOutOfRange is a valid hex digit whose value is >= the base
	KindDigitOutOfRange
)

// String returns a stable snake_case reason for the kind
func (k Kind) String() string {
	switch k {
	case KindUnsupportedBase:
		return "unsupported_base"
	case KindEmptyInput:
		return "empty_input"
	case KindInvalidCharacter:
		return "invalid_character"
	case KindDigitOutOfRange:
		return "digit_out_of_range"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinels for errors.Is matching on kind
var (
	ErrUnsupportedBase  = &Error{Kind: KindUnsupportedBase}
	ErrEmptyInput       = &Error{Kind: KindEmptyInput}
	ErrInvalidCharacter = &Error{Kind: KindInvalidCharacter}
	ErrDigitOutOfRange  = &Error{Kind: KindDigitOutOfRange}
)

// Error is the single failure type returned by this package
// Base is the offending base for UnsupportedBase and the governing base otherwise
// Char and Pos locate the offending character in the trimmed unsigned digits
// Role is "from" or "to" for base errors raised by Convert
// Text is the raw token for ParseRadix failures
type Error struct {
	Kind Kind
	Base Radix
	Char rune
	Pos  int
	Role string
	Text string
}

// Error implements error
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindUnsupportedBase:
		switch {
		case e.Text != "":
			return fmt.Sprintf("unsupported base %q: must be 2, 8, 10, or 16", e.Text)
		case e.Role != "":
			return fmt.Sprintf("unsupported %s base %d: must be 2, 8, 10, or 16", e.Role, int(e.Base))
		default:
			return fmt.Sprintf("unsupported base %d: must be 2, 8, 10, or 16", int(e.Base))
		}
	case KindEmptyInput:
		return "empty input"
	case KindInvalidCharacter:
		return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
	case KindDigitOutOfRange:
		return fmt.Sprintf("digit %q at position %d is out of range for base %d", e.Char, e.Pos, int(e.Base))
	}
	return "radix: " + e.Kind.String()
}

// Is matches any *Error of the same kind so the sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf extracts the kind of a radix error anywhere in err's chain
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind, true
	}
	return 0, false
}
