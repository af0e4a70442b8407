package authorship

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Append(ctx context.Context, actorID, recordID int64, action Action) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "authorship_service"),
	}
}

// Append writes one entry for the given actor and record identifier snapshot.
// It never consults the records table: whether the record still exists is
// irrelevant to the log.
func (s *Service) Append(ctx context.Context, actorID, recordID int64, action Action) (Entry, error) {
	if !action.Valid() {
		return Entry{}, fmt.Errorf("unknown action %q", action)
	}

	entry := Entry{
		RecordID: recordID,
		UserID:   actorID,
		Action:   action.Describe(recordID),
	}

	id, err := s.repo.Append(ctx, &entry)
	if err != nil {
		s.log.Error("failed to append entry", "record_id", recordID, "actor_id", actorID, "error", err)
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}

	entry.ID = id
	return entry, nil
}

// List returns the full audit trail ordered by entry identifier ascending,
// including entries whose records no longer exist.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list entries", "error", err)
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
