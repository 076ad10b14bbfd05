package domain

import (
	"reflect"

	"baseconv/internal/core/radix"
	"baseconv/internal/platform/net/http/bind"
)

func init() {
	bind.MustRegisterTag("radix", validRadix, "{0} must be 2, 8, 10, or 16")
}

// validRadix backs the radix tag on integer fields
func validRadix(fl bind.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return radix.Radix(f.Int()).Valid()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.Uint() <= 16 && radix.Radix(f.Uint()).Valid()
	}
	return false
}
