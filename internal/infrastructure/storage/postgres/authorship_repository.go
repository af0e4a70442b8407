package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"registre/internal/domain/authorship"
)

type AuthorshipRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAuthorshipRepository(pool *pgxpool.Pool, log *slog.Logger) *AuthorshipRepository {
	return &AuthorshipRepository{
		pool: pool,
		log:  log.With("component", "authorship_repository"),
	}
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so entries can be
// appended standalone or inside a record mutation's transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// insertEntry writes one authorship row. The record identifier goes in as a
// plain value; nothing here touches the records table.
func insertEntry(ctx context.Context, q rowQuerier, entry *authorship.Entry) (int64, error) {
	const query = `
		INSERT INTO authorship (record_id, user_id, action)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query, entry.RecordID, entry.UserID, entry.Action).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert authorship entry: %w", err)
	}
	return entry.ID, nil
}

func (r *AuthorshipRepository) Append(ctx context.Context, entry *authorship.Entry) (int64, error) {
	id, err := insertEntry(ctx, r.pool, entry)
	if err != nil {
		r.log.Error("failed to append entry",
			"record_id", entry.RecordID, "user_id", entry.UserID, "error", err)
		return 0, err
	}
	return id, nil
}

// List returns the whole trail ordered by entry id ascending, joined with the
// acting user's login. The join is on users only; deleted records still show.
func (r *AuthorshipRepository) List(ctx context.Context) ([]authorship.Entry, error) {
	const query = `
		SELECT a.id, a.record_id, a.user_id, u.login, a.action, a.created_at
		FROM authorship a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list entries", "error", err)
		return nil, fmt.Errorf("list authorship entries: %w", err)
	}
	defer rows.Close()

	var entries []authorship.Entry
	for rows.Next() {
		var e authorship.Entry
		if err := rows.Scan(&e.ID, &e.RecordID, &e.UserID, &e.UserLogin, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan authorship entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
