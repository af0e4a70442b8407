package record

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, actorID int64, fields Fields) (*Record, error)
	Update(ctx context.Context, actorID, recordID int64, fields Fields) (*Record, error)
	Delete(ctx context.Context, actorID, recordID int64) error
	Get(ctx context.Context, recordID int64) (*Record, error)
	List(ctx context.Context, query ListQuery) ([]Record, error)
	ListByChamber(ctx context.Context, registered bool) ([]Record, error)
	Search(ctx context.Context, keyword string) ([]FieldGroup, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "record_service"),
	}
}

// Create validates the fields, assigns a new identifier and persists the
// record; the acting user is recorded in the authorship log by the same
// transaction.
func (s *Service) Create(ctx context.Context, actorID int64, fields Fields) (*Record, error) {
	if err := validate(fields); err != nil {
		s.log.Debug("create rejected", "error", err)
		return nil, err
	}

	rec := fromFields(fields)
	id, err := s.repo.Create(ctx, actorID, rec)
	if err != nil {
		s.log.Error("failed to create record", "actor_id", actorID, "error", err)
		return nil, fmt.Errorf("create record: %w", err)
	}
	rec.ID = id

	s.log.Info("record created", "record_id", id, "actor_id", actorID)
	return rec, nil
}

// Update replaces all mutable fields of the record. Validation failures leave
// the stored record untouched and append nothing; the identifier never
// changes.
func (s *Service) Update(ctx context.Context, actorID, recordID int64, fields Fields) (*Record, error) {
	if err := validate(fields); err != nil {
		s.log.Debug("update rejected", "record_id", recordID, "error", err)
		return nil, err
	}

	rec := fromFields(fields)
	rec.ID = recordID
	if err := s.repo.Update(ctx, actorID, rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update record", "record_id", recordID, "actor_id", actorID, "error", err)
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated", "record_id", recordID, "actor_id", actorID)
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, actorID, recordID int64) error {
	if err := s.repo.Delete(ctx, actorID, recordID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete record", "record_id", recordID, "actor_id", actorID, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "record_id", recordID, "actor_id", actorID)
	return nil
}

func (s *Service) Get(ctx context.Context, recordID int64) (*Record, error) {
	rec, err := s.repo.Get(ctx, recordID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get record", "record_id", recordID, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns records sorted by the requested field, optionally filtered on
// a single attribute. Unknown field names are a validation error, never SQL.
func (s *Service) List(ctx context.Context, query ListQuery) ([]Record, error) {
	if query.OrderBy == "" {
		query.OrderBy = FieldID
	}
	if query.OrderBy.Column() == "" {
		return nil, fmt.Errorf("%w: unknown sort field %q", ErrValidation, query.OrderBy)
	}
	if query.Filter != nil && query.Filter.Field.Column() == "" {
		return nil, fmt.Errorf("%w: unknown filter field %q", ErrValidation, query.Filter.Field)
	}

	records, err := s.repo.List(ctx, query)
	if err != nil {
		s.log.Error("failed to list records", "order_by", query.OrderBy, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// ListByChamber returns records that were (or were not) also registered at
// the Chambre des comptes, per the "0" sentinel.
func (s *Service) ListByChamber(ctx context.Context, registered bool) ([]Record, error) {
	records, err := s.repo.ListByChamber(ctx, registered)
	if err != nil {
		s.log.Error("failed to list records by chamber", "registered", registered, "error", err)
		return nil, fmt.Errorf("list records by chamber: %w", err)
	}
	return records, nil
}

// Search matches the keyword against every text attribute and returns one
// result group per attribute, mirroring the advanced search view.
func (s *Service) Search(ctx context.Context, keyword string) ([]FieldGroup, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: empty search keyword", ErrValidation)
	}

	groups := make([]FieldGroup, 0, len(SearchFields()))
	for _, field := range SearchFields() {
		records, err := s.repo.List(ctx, ListQuery{
			OrderBy: FieldID,
			Filter:  &Filter{Field: field, Value: keyword, Substring: true},
		})
		if err != nil {
			s.log.Error("failed to search records", "field", field, "error", err)
			return nil, fmt.Errorf("search records: %w", err)
		}
		groups = append(groups, FieldGroup{Field: field, Records: records})
	}
	return groups, nil
}

func validate(fields Fields) error {
	if fields.Regeste == "" {
		return fmt.Errorf("%w: regeste is required", ErrValidation)
	}
	if fields.RegDate == "" {
		return fmt.Errorf("%w: registration date is required", ErrValidation)
	}
	return nil
}

func fromFields(fields Fields) *Record {
	chamberRef := fields.ChamberRef
	if chamberRef == "" {
		chamberRef = ChamberNone
	}
	return &Record{
		Nature:     fields.Nature,
		Regeste:    fields.Regeste,
		DocDate:    fields.DocDate,
		Motive:     fields.Motive,
		RegDate:    fields.RegDate,
		RegMode:    fields.RegMode,
		ChamberRef: chamberRef,
	}
}
