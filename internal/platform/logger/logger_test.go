package logger

import (
	"bytes"
	"context"
	"testing"

	kit "baseconv/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"panic":   zerolog.PanicLevel,
		"off":     zerolog.Disabled,
		" ":       zerolog.DebugLevel,
		"loud":    zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_ScopedLoggers(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:        "info",
		Format:       "console",
		Service:      "baseconv-api",
		Component:    "root",
		Writer:       &buf,
		WithCaller:   true,
		SampleEvery:  2,
		StaticFields: map[string]string{"build": "test"},
	})

	// resample to N=1 so every line is written
	always := &zerolog.BasicSampler{N: 1}

	r := Get().Sample(always)
	r.Info().Msg("root-msg")

	n := Named("convert").Sample(always)
	n.Info().Msg("named-msg")

	ctx := WithConversion(WithRequest(context.Background(), "req-123"), "0190-abc")
	c := C(ctx).Sample(always)
	c.Info().Msg("ctx-msg")

	bare := C(WithRequest(context.Background(), "")).Sample(always)
	bare.Info().Msg("bare-msg")

	out := buf.String()
	for _, want := range []string{
		"root-msg", "named-msg", "ctx-msg", "bare-msg",
		"component=", "convert",
		"request_id=", "req-123",
		"conversion_id=", "0190-abc",
		"service=", "baseconv-api",
		"build=", "test",
	} {
		kit.MustContain(t, out, want)
	}
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return the root logger")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "baseconv")
	t.Setenv("LOG_COMPONENT", "cli")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" {
		t.Fatalf("level/format = %q/%q", opt.Level, opt.Format)
	}
	if opt.Service != "baseconv" || opt.Component != "cli" || !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv mismatch: %+v", opt)
	}
}

func TestWithRequest_EmptyKeepsContext(t *testing.T) {
	base := context.Background()
	if WithRequest(base, "") != base || WithConversion(base, "") != base {
		t.Fatalf("empty ids must not wrap the context")
	}
}
