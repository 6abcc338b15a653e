package article

import (
	"log/slog"
	"net/http"

	hhttp "localnews/internal/handler/http"
	artUC "localnews/internal/usecase/article"
)

// Register wires the article read endpoints onto the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /articles/{category}", CategoryHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /article/{id}", GetHandler{Svc: svc, Logger: logger})

	// Non-GET requests on these paths get the JSON 404 rather than the
	// mux's plain-text 405.
	mux.HandleFunc("/articles", hhttp.NotFound)
	mux.HandleFunc("/articles/{category}", hhttp.NotFound)
	mux.HandleFunc("/article/{id}", hhttp.NotFound)
}
