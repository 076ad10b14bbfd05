// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "baseconv/internal/platform/errors"
	"baseconv/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Reasons attached to binding failures
const (
	ReasonJSON       = "invalid_json"
	ReasonValidation = "validation"
)

// FieldLevel aliases validator.FieldLevel for custom tag funcs
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds the validator and its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() }
)

// Init builds the validator singleton: json tag names in messages, english
// translations and shorter min/max wording
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		addMessage(v, trans, "min", "{0} must be at least {1}")
		addMessage(v, trans, "max", "{0} must be at most {1}")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton
func Get() *ValidatorSvc { return Init() }

// RegisterTag registers a custom validation tag and its message
// msg may use {0} for the field name and {1} for the tag param
func RegisterTag(tag string, fn func(FieldLevel) bool, msg string) error {
	svc := Get()
	if err := svc.Validator.RegisterValidation(tag, fn); err != nil {
		return err
	}
	addMessage(svc.Validator, svc.Translator, tag, msg)
	return nil
}

// MustRegisterTag is RegisterTag for package init, panicking on error
func MustRegisterTag(tag string, fn func(FieldLevel) bool, msg string) {
	if err := RegisterTag(tag, fn, msg); err != nil {
		panic("bind: register tag " + tag + ": " + err.Error())
	}
}

func addMessage(v *validator.Validate, trans ut.Translator, tag, msg string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// JSONOptions controls parsing
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes one JSON value into T and validates it
// Decode failures are ErrorCodeJSON; validation failures are ErrorCodeValidation
// with the offending json field attached
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if !o.AllowEmptyBody {
		// peek one byte so an empty body gets a clear error instead of EOF
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			return zero, jsonErr(perr.JSONErrf("empty body"))
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, jsonErr(perr.JSONErrf("invalid JSON: %v", err))
	}
	if jsonMore(dec) {
		return zero, jsonErr(perr.JSONErrf("unexpected trailing data"))
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation on v and maps failures like ParseJSON does
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return jsonErr(perr.JSONErrf("validation error"))
	}
	field, msg := ValidationFieldAndMessage(err)
	out := perr.WithReason(perr.Newf(perr.ErrorCodeValidation, "%s", msg), ReasonValidation)
	if field != "" {
		out = perr.WithField(out, field)
	}
	return out
}

func jsonErr(err error) error { return perr.WithReason(err, ReasonJSON) }

// ValidationFieldAndMessage returns the first failing field and its translated message
// The field is the dotted json path below the root struct, e.g. "items[2].from"
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return "", inv.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		return ns, fe.Translate(Get().Translator)
	}
	return "", err.Error()
}
