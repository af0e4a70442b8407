package record

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"registre/internal/app/server/api/http/middleware/auth"
	"registre/internal/domain/record"
)

// perPageDefault is how many records a paginated browse shows per page.
const perPageDefault = 5

type Handler struct {
	service   record.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler builds the record handler. Reads run with the public middleware
// chain; mutations run with the protected chain, which must include the auth
// gate.
func NewHandler(service record.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.chamberOp(), h.chamber)
	huma.Register(api, h.noChamberOp(), h.noChamber)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	query := record.ListQuery{OrderBy: record.Field(input.OrderBy)}

	if input.FilterField != "" {
		query.Filter = &record.Filter{
			Field:     record.Field(input.FilterField),
			Value:     input.FilterValue,
			Substring: input.Substring,
		}
	}

	if input.Page > 0 {
		perPage := input.PerPage
		if perPage <= 0 {
			perPage = perPageDefault
		}
		query.Limit = perPage
		query.Offset = (input.Page - 1) * perPage
	}

	records, err := h.service.List(ctx, query)
	if err != nil {
		if errors.Is(err, record.ErrValidation) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, err
	}

	return &listOutput{
		Body: ListResponse{Records: records, Total: len(records)},
	}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	groups, err := h.service.Search(ctx, input.Keyword)
	if err != nil {
		if errors.Is(err, record.ErrValidation) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, err
	}

	return &searchOutput{
		Body: SearchResponse{Keyword: input.Keyword, Groups: groups},
	}, nil
}

func (h *Handler) chamber(ctx context.Context, _ *chamberInput) (*listOutput, error) {
	return h.listByChamber(ctx, true)
}

func (h *Handler) noChamber(ctx context.Context, _ *chamberInput) (*listOutput, error) {
	return h.listByChamber(ctx, false)
}

func (h *Handler) listByChamber(ctx context.Context, registered bool) (*listOutput, error) {
	records, err := h.service.ListByChamber(ctx, registered)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: ListResponse{Records: records, Total: len(records)},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	rec, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, huma.Error404NotFound("record not found")
		}
		return nil, err
	}

	return &findOutput{
		Body: FindResponse{Status: "Ok", Record: rec},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*mutationOutput, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	rec, err := h.service.Create(ctx, actorID, fields(input.Body))
	if err != nil {
		if errors.Is(err, record.ErrValidation) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, err
	}

	return &mutationOutput{
		Body: MutationResponse{ID: rec.ID, Status: "Ok"},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*mutationOutput, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	rec, err := h.service.Update(ctx, actorID, input.ID, fields(input.Body))
	if err != nil {
		switch {
		case errors.Is(err, record.ErrValidation):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, record.ErrNotFound):
			return nil, huma.Error404NotFound("record not found")
		}
		return nil, err
	}

	return &mutationOutput{
		Body: MutationResponse{ID: rec.ID, Status: "Ok"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*mutationOutput, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, actorID, input.ID); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, huma.Error404NotFound("record not found")
		}
		return nil, err
	}

	return &mutationOutput{
		Body: MutationResponse{ID: input.ID, Status: "Ok"},
	}, nil
}

func fields(req RecordRequest) record.Fields {
	return record.Fields{
		Nature:     req.Nature,
		Regeste:    req.Regeste,
		DocDate:    req.DocDate,
		Motive:     req.Motive,
		RegDate:    req.RegDate,
		RegMode:    req.RegMode,
		ChamberRef: req.ChamberRef,
	}
}
