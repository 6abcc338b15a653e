package article

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"localnews/internal/handler/http/pathutil"
	"localnews/internal/handler/http/respond"
	"localnews/internal/observability/logging"
	artUC "localnews/internal/usecase/article"
)

type GetHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// errorBody carries a short error label plus a human-readable detail.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// ServeHTTP returns a single article by ID. A non-numeric or
// non-positive ID yields 400; a missing article yields 404.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	id, err := pathutil.ExtractID(r.URL.Path, "/article/")
	if err != nil {
		logger.Warn("invalid article ID in path", "path", r.URL.Path)
		respond.JSON(w, http.StatusBadRequest, errorBody{
			Error:   "Invalid article ID",
			Details: "Article ID must be a number",
		})
		return
	}

	art, err := h.Svc.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrInvalidArticleID):
			respond.JSON(w, http.StatusBadRequest, errorBody{
				Error:   "Invalid article ID",
				Details: "Article ID must be a number",
			})
		case errors.Is(err, artUC.ErrArticleNotFound):
			logger.Info("article not found", "id", id)
			respond.JSON(w, http.StatusNotFound, errorBody{
				Error:   "Article not found",
				Details: fmt.Sprintf("No article found with ID %d", id),
			})
		default:
			logger.Error("failed to get article", "id", id, "error", err)
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
