package http

import (
	"net/http"

	"localnews/internal/domain/entity"
	"localnews/internal/handler/http/respond"
)

// APIInfo describes the service and its endpoints, served at the root.
type APIInfo struct {
	Message   string       `json:"message"`
	Version   string       `json:"version"`
	Endpoints APIEndpoints `json:"endpoints"`
}

// APIEndpoints enumerates the read endpoints and valid categories.
type APIEndpoints struct {
	GetAllArticles string   `json:"getAllArticles"`
	GetByCategory  string   `json:"getByCategory"`
	GetArticleByID string   `json:"getArticleById"`
	Categories     []string `json:"categories"`
}

// notFoundBody is the body for requests that match no route.
type notFoundBody struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// NotFound writes the JSON body served for any request outside the API
// contract, including method mismatches on known paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusNotFound, notFoundBody{
		Error: "Endpoint not found",
		Path:  r.URL.Path,
	})
}

// RootHandler serves the API description at "/" and a JSON 404 for
// every other unmatched path.
type RootHandler struct {
	Version string
}

func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFound(w, r)
		return
	}

	respond.JSON(w, http.StatusOK, APIInfo{
		Message: "Local News API",
		Version: h.Version,
		Endpoints: APIEndpoints{
			GetAllArticles: "GET /articles",
			GetByCategory:  "GET /articles/:category",
			GetArticleByID: "GET /article/:id",
			Categories:     entity.CategoryNames(),
		},
	})
}
