package article

import (
	"errors"
	"log/slog"
	"net/http"

	"localnews/internal/domain/entity"
	"localnews/internal/handler/http/pathutil"
	"localnews/internal/handler/http/respond"
	"localnews/internal/observability/logging"
	artUC "localnews/internal/usecase/article"
)

type CategoryHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// categoryErrorBody is returned for an unknown category name so clients
// can see the accepted set.
type categoryErrorBody struct {
	Error           string   `json:"error"`
	ValidCategories []string `json:"validCategories"`
}

// ServeHTTP returns the articles in one category, most recent first.
// An unknown category yields 400 with the list of valid categories; a
// valid category with no articles yields an empty array.
func (h CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	name := pathutil.ExtractSegment(r.URL.Path, "/articles/")

	arts, err := h.Svc.ListByCategory(ctx, name)
	if err != nil {
		if errors.Is(err, artUC.ErrInvalidCategory) {
			logger.Warn("invalid category requested", "category", name)
			respond.JSON(w, http.StatusBadRequest, categoryErrorBody{
				Error:           "Invalid category",
				ValidCategories: entity.CategoryNames(),
			})
			return
		}
		logger.Error("failed to list articles by category", "category", name, "error", err)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("category list request", "category", name, "count", len(arts))
	respond.JSON(w, http.StatusOK, toDTOs(arts))
}
