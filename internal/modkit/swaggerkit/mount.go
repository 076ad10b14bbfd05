// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	phttp "baseconv/internal/platform/net/http"
	docs "baseconv/internal/services/api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI and doc.json live
const DocsPath = "/api/docs"

// Mount the Swagger UI and JSON spec if enabled
// the UI reads the instance registered by the generated docs package
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
