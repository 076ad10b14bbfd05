package domain

import (
	"errors"

	"baseconv/internal/core/radix"
	perr "baseconv/internal/platform/errors"
)

// Reasons the service adds on top of the radix kinds
const (
	ReasonInputTooLong = "input_too_long"
	ReasonBatchTooBig  = "batch_too_big"
)

// MapError turns a radix failure into a platform error carrying field and reason
// Unsupported bases are 422 on from or to; bad digits are 400 on input
// Non radix errors pass through unchanged
func MapError(err error) error {
	var re *radix.Error
	if !errors.As(err, &re) {
		return err
	}
	var out error
	switch re.Kind {
	case radix.KindUnsupportedBase:
		field := re.Role
		if field == "" {
			field = "from"
		}
		out = perr.WithField(perr.New(perr.ErrorCodeInvalidArgument, re.Error()), field)
	default:
		out = perr.WithField(perr.New(perr.ErrorCodeValidation, re.Error()), "input")
	}
	return perr.WithReason(out, re.Kind.String())
}

// Reason returns the stable reason tag for err, or "" when it has none
func Reason(err error) string {
	if e, ok := perr.As(err); ok {
		return e.Reason()
	}
	if k, ok := radix.KindOf(err); ok {
		return k.String()
	}
	return ""
}

// ItemErrorOf builds the per item error block of a batch result
func ItemErrorOf(err error) *ItemError {
	w := perr.WireFrom(err)
	reason := w.Reason
	if reason == "" {
		reason = perr.CodeOf(err).String()
	}
	return &ItemError{Reason: reason, Field: w.Field, Message: w.Message}
}
