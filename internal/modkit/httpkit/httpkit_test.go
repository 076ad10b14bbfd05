package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "baseconv/internal/platform/errors"
	phttp "baseconv/internal/platform/net/http"
)

type pairIn struct {
	Input string `json:"input" validate:"required"`
	From  int    `json:"from"`
}

func newRouter() (Router, *chi.Mux) {
	mux := chi.NewRouter()
	return phttp.AdaptChi(mux), mux
}

func serve(h http.Handler, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestPostJSON_BindsAndValidates(t *testing.T) {
	t.Parallel()

	r, mux := newRouter()
	PostJSON(r, "/echo", func(_ *http.Request, in pairIn) (any, error) {
		return map[string]any{"input": in.Input, "from": in.From}, nil
	})

	rec, env := serve(mux, http.MethodPost, "/echo", `{"input":"FF","from":16}`)
	if rec.Code != http.StatusOK || env.Status != "ok" {
		t.Fatalf("status=%d env=%+v", rec.Code, env)
	}
	if !strings.Contains(rec.Body.String(), `"input":"FF"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}

	rec, env = serve(mux, http.MethodPost, "/echo", `{"from":16}`)
	if rec.Code != http.StatusBadRequest || env.Field != "input" {
		t.Fatalf("missing input: status=%d env=%+v", rec.Code, env)
	}

	rec, _ = serve(mux, http.MethodPost, "/echo", `{`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed json: status=%d", rec.Code)
	}
}

func TestGet_ResponsePassthroughAndErrors(t *testing.T) {
	t.Parallel()

	r, mux := newRouter()
	Get(r, "/made", func(*http.Request) (any, error) { return Created("made"), nil })
	Get(r, "/gone", func(*http.Request) (any, error) { return nil, perr.NotFoundf("no such thing") })
	Get(r, "/boom", func(*http.Request) (any, error) { return nil, errors.New("boom") })

	rec, _ := serve(mux, http.MethodGet, "/made", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("made status = %d", rec.Code)
	}
	rec, env := serve(mux, http.MethodGet, "/gone", "")
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("gone status=%d env=%+v", rec.Code, env)
	}
	rec, _ = serve(mux, http.MethodGet, "/boom", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("boom status = %d", rec.Code)
	}
}

func TestList_PageBlock(t *testing.T) {
	t.Parallel()

	h := Handle(func(*http.Request) Response { return List([]string{"a", "b"}, 10, 2, 2) })
	rec, env := serve(http.HandlerFunc(h), http.MethodGet, "/", "")
	if rec.Code != http.StatusOK || env.Page == nil {
		t.Fatalf("status=%d env=%+v", rec.Code, env)
	}
	if env.Page.Total != 10 || env.Page.Limit != 2 || env.Page.Returned != 2 {
		t.Fatalf("page = %+v", env.Page)
	}
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	rec, _ := serve(http.HandlerFunc(Handle(func(*http.Request) Response { return NoContent() })), http.MethodGet, "/", "")
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestMountAPIV1_AndMountUnder(t *testing.T) {
	t.Parallel()

	r, mux := newRouter()
	hit := ""
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Module", "convert")
			next.ServeHTTP(w, req)
		})
	}
	MountAPIV1(r, nil, func(api Router) {
		MountUnder(api, "/convert", []func(http.Handler) http.Handler{tag}, func(sub Router) {
			Get(sub, "/ping", func(req *http.Request) (any, error) {
				hit = req.URL.Path
				return "pong", nil
			})
		})
	})

	rec, _ := serve(mux, http.MethodGet, "/api/v1/convert/ping", "")
	if rec.Code != http.StatusOK || hit != "/api/v1/convert/ping" {
		t.Fatalf("status=%d hit=%q", rec.Code, hit)
	}
	if rec.Header().Get("X-Module") != "convert" {
		t.Fatal("module middleware not applied")
	}

	rec, _ = serve(mux, http.MethodGet, "/convert/ping", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unversioned path status = %d", rec.Code)
	}
}

func TestMountAPI_TrimsSlash(t *testing.T) {
	t.Parallel()

	r, mux := newRouter()
	MountAPI(r, "/v2", nil, func(api Router) {
		Get(api, "/x", func(*http.Request) (any, error) { return "ok", nil })
	})
	if rec, _ := serve(mux, http.MethodGet, "/api/v2/x", ""); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCommonStack(t *testing.T) {
	t.Parallel()

	r, mux := newRouter()
	MountAPIV1(r, CommonStack(StackOptions{}), func(api Router) {
		Get(api, "/panics", func(*http.Request) (any, error) { panic("kaboom") })
		Get(api, "/ok", func(req *http.Request) (any, error) { return "fine", nil })
	})

	rec, env := serve(mux, http.MethodGet, "/api/v1/panics", "")
	if rec.Code != http.StatusInternalServerError || env.Code != perr.ErrorCodePanic {
		t.Fatalf("panic status=%d env=%+v", rec.Code, env)
	}
	if env.RequestID == "" {
		t.Fatal("request id missing from error envelope")
	}

	rec, _ = serve(mux, http.MethodGet, "/api/v1/ok/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("trailing slash status = %d", rec.Code)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatal("no-cache headers missing")
	}
}
