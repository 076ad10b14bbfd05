package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"baseconv/internal/platform/testkit"
)

type fakeGuard struct {
	err     error
	lastCtx context.Context
}

func (f *fakeGuard) Guard(ctx context.Context) error {
	f.lastCtx = ctx
	return f.err
}

func TestMustGuard(t *testing.T) {
	t.Parallel()

	t.Run("ok adds a deadline", func(t *testing.T) {
		t.Parallel()
		g := &fakeGuard{}
		start := time.Now()
		MustGuard(context.Background(), g)

		dl, ok := g.lastCtx.Deadline()
		if !ok {
			t.Fatal("expected a default deadline")
		}
		if d := dl.Sub(start); d < 4*time.Second || d > 6*time.Second {
			t.Fatalf("default deadline = %v, want about 5s", d)
		}
	})

	t.Run("keeps caller deadline", func(t *testing.T) {
		t.Parallel()
		g := &fakeGuard{}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		MustGuard(ctx, g)

		want, _ := ctx.Deadline()
		got, _ := g.lastCtx.Deadline()
		if !got.Equal(want) {
			t.Fatalf("deadline = %v, want %v", got, want)
		}
	})

	t.Run("error panics", func(t *testing.T) {
		t.Parallel()
		g := &fakeGuard{err: errors.New("pg: refused")}
		r := testkit.MustPanic(t, func() { MustGuard(context.Background(), g) })
		if _, ok := r.(error); !ok {
			t.Fatalf("panic = %v, want an error", r)
		}
		testkit.MustPanicContaining(t, func() { MustGuard(context.Background(), g) }, "dependency guard failed: pg: refused")
	})

	t.Run("nil store panics", func(t *testing.T) {
		t.Parallel()
		testkit.MustPanic(t, func() { MustGuard(context.Background(), nil) })
	})
}
