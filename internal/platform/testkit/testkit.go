// Package testkit holds the assertions and seam helpers shared by package tests
package testkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic asserts that fn panics and returns the recovered value
func MustPanic(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
	return nil
}

// MustPanicContaining asserts that fn panics with a value whose text contains needle
// error values are matched on Error(), everything else through %v
func MustPanicContaining(t *testing.T, fn func(), needle string) {
	t.Helper()
	r := MustPanic(t, fn)
	var msg string
	if err, ok := r.(error); ok {
		msg = err.Error()
	} else {
		msg = fmt.Sprint(r)
	}
	if !strings.Contains(msg, needle) {
		t.Fatalf("panic %q does not contain %q", msg, needle)
	}
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle
// long haystacks (log output, swagger json) are written to a temp file instead of the failure line
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	if len(haystack) <= 512 {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
	tmpfile := filepath.Join(t.TempDir(), "haystack.txt")
	_ = os.WriteFile(tmpfile, []byte(haystack), 0o600)
	t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, tmpfile)
}
