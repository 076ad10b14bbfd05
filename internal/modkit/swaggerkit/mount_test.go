package swaggerkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "baseconv/internal/platform/net/http"
	"baseconv/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestMount(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		mux := chi.NewRouter()
		Mount(phttp.AdaptChi(mux), false)

		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", rr.Code)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		testkit.Swap(t, &titleSuffix, func() string { return "" })
		mux := chi.NewRouter()
		Mount(phttp.AdaptChi(mux), true)

		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, DocsPath, nil))
		if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != DocsPath+"/" {
			t.Fatalf("redirect = %d %q", rr.Code, rr.Header().Get("Location"))
		}

		rr = httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("doc.json status %d", rr.Code)
		}
		testkit.MustContain(t, rr.Body.String(), `"url":"/api/v1"`)
		testkit.MustContain(t, rr.Body.String(), `"/convert"`)

		rr = httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, DocsPath+"/index.html", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("ui status %d", rr.Code)
		}
	})
}
