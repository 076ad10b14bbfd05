package testkit

import (
	"errors"
	"testing"
)

func TestMustPanic_ReturnsValue(t *testing.T) {
	t.Parallel()

	got := MustPanic(t, func() { panic("radix: digit value 16 out of range 0..15") })
	if got != "radix: digit value 16 out of range 0..15" {
		t.Fatalf("recovered %v", got)
	}
}

func TestMustPanicContaining(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		value  any
		needle string
	}{
		{"string", "module: requested port not found on module convert", "port not found"},
		{"error", errors.New("dependency guard failed: pg: connection refused"), "guard failed"},
		{"other", 16, "16"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			MustPanicContaining(t, func() { panic(c.value) }, c.needle)
		})
	}
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, `{"output":"11111111","digits":8}`, `"digits":8`)
}
