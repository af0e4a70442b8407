package authorship

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"registre/internal/app/server/api/http/middleware/auth"
	"registre/internal/domain/authorship"
)

type Handler struct {
	service    authorship.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service authorship.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

// list returns the complete audit trail, oldest first, including entries for
// records that no longer exist.
func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entries, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: ListResponse{Entries: entries, Total: len(entries)},
	}, nil
}
