package handler

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/docs"
	"github.com/go-chi/chi/v5"
	"github.com/swaggo/swag"
)

const (
	SwaggerDocPath = "/swagger/doc.json"
	OpenAPIDocPath = "/openapi.json"
	LivePath       = "/-/live"
)

// RegisterDocsRoutes serves the Swagger 2.0 and OpenAPI 3 documents and the
// liveness probe.
func RegisterDocsRoutes(r chi.Router) {
	r.Get(SwaggerDocPath, handleSwaggerDoc)
	r.Get(OpenAPIDocPath, handleOpenAPIDoc)
	r.Get(LivePath, HandleLive)
}

func handleSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		WriteError(w, r, err, slog.Default())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}

func handleOpenAPIDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := docs.OpenAPI3()
	if err != nil {
		WriteError(w, r, err, slog.Default())
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// HandleLive reports that the process is serving requests
// @Summary      Liveness probe
// @Tags         health
// @Success      200  "OK"
// @Router       /-/live [get]
func HandleLive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
