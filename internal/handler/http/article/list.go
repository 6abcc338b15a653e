package article

import (
	"log/slog"
	"net/http"

	"localnews/internal/handler/http/respond"
	"localnews/internal/observability/logging"
	artUC "localnews/internal/usecase/article"
)

type ListHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns every article, most recent first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	arts, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("failed to list articles", "error", err)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("article list request", "count", len(arts))
	respond.JSON(w, http.StatusOK, toDTOs(arts))
}
