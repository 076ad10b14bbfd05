package http

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	phttp "baseconv/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, dst any) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s status = %d", path, rec.Code)
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	var got HealthResponse
	get(t, Deps{ServiceName: "baseconv-api", StartedAt: time.Now()}, "/health", &got)
	if !got.OK || got.Service != "baseconv-api" {
		t.Fatalf("health = %+v", got)
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		pg, ch any
		status string
		checks []string
	}{
		{"all disabled", nil, nil, "ok", []string{"skipped", "skipped"}},
		{"both up", pinger{}, pinger{}, "ok", []string{"ok", "ok"}},
		{"ch down", pinger{}, pinger{err: errors.New("refused")}, "fail", []string{"ok", "fail"}},
		{"not a pinger", struct{}{}, nil, "ok", []string{"unknown", "skipped"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			var got ReadyResponse
			get(t, Deps{PG: c.pg, CH: c.ch}, "/ready", &got)
			if got.Status != c.status {
				t.Fatalf("status = %q", got.Status)
			}
			var states []string
			for _, ch := range got.Checks {
				states = append(states, ch.Status)
			}
			if !reflect.DeepEqual(states, c.checks) {
				t.Fatalf("checks = %v", states)
			}
		})
	}
}

func TestService(t *testing.T) {
	t.Parallel()

	var got ServiceResponse
	get(t, Deps{
		ServiceName: "baseconv-api",
		StartedAt:   time.Now().Add(-90 * time.Second),
		Modules:     func() []string { return []string{"convert", "meta"} },
	}, "/service", &got)
	if got.Uptime < 89 || !reflect.DeepEqual(got.Modules, []string{"convert", "meta"}) {
		t.Fatalf("service = %+v", got)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var got map[string]string
	get(t, Deps{}, "/version", &got)
	if got["service"] == "" || got["version"] == "" {
		t.Fatalf("version = %v", got)
	}
}

func TestRadix(t *testing.T) {
	t.Parallel()

	var got []RadixInfo
	get(t, Deps{}, "/radix", &got)
	want := []RadixInfo{
		{2, "binary", "01"},
		{8, "octal", "01234567"},
		{10, "decimal", "0123456789"},
		{16, "hexadecimal", "0123456789ABCDEF"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("radix = %+v", got)
	}
}
