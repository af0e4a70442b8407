package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"registre/internal/domain/authorship"
	"registre/internal/domain/record"
)

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository"),
	}
}

const recordColumns = `id, COALESCE(nature, ''), regeste, COALESCE(doc_date, ''),
	COALESCE(motive, ''), reg_date, COALESCE(reg_mode, ''), chamber_ref`

// Create inserts the record and its "added" authorship entry in one
// transaction. The entry is written second: the identifier it embeds only
// exists once the insert has returned it.
func (r *RecordRepository) Create(ctx context.Context, actorID int64, rec *record.Record) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO records (nature, regeste, doc_date, motive, reg_date, reg_mode, chamber_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err = tx.QueryRow(ctx, query,
		rec.Nature, rec.Regeste, rec.DocDate, rec.Motive,
		rec.RegDate, rec.RegMode, rec.ChamberRef,
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to insert record", "actor_id", actorID, "error", err)
		return 0, fmt.Errorf("insert record: %w", err)
	}

	entry := &authorship.Entry{
		RecordID: id,
		UserID:   actorID,
		Action:   authorship.ActionAdded.Describe(id),
	}
	if _, err := insertEntry(ctx, tx, entry); err != nil {
		r.log.Error("failed to log record creation", "record_id", id, "error", err)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	rec.ID = id
	return id, nil
}

// Update replaces all mutable fields and appends the "modified" entry in the
// same transaction. A missing row aborts before any entry is written.
func (r *RecordRepository) Update(ctx context.Context, actorID int64, rec *record.Record) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		UPDATE records
		SET nature = $1, regeste = $2, doc_date = $3, motive = $4,
		    reg_date = $5, reg_mode = $6, chamber_ref = $7
		WHERE id = $8
		RETURNING id`

	var id int64
	err = tx.QueryRow(ctx, query,
		rec.Nature, rec.Regeste, rec.DocDate, rec.Motive,
		rec.RegDate, rec.RegMode, rec.ChamberRef, rec.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.ErrNotFound
		}
		r.log.Error("failed to update record", "record_id", rec.ID, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	entry := &authorship.Entry{
		RecordID: id,
		UserID:   actorID,
		Action:   authorship.ActionModified.Describe(id),
	}
	if _, err := insertEntry(ctx, tx, entry); err != nil {
		r.log.Error("failed to log record update", "record_id", id, "error", err)
		return err
	}

	return tx.Commit(ctx)
}

// Delete appends the "deleted" entry before removing the row, capturing the
// identifier while it is still live. If the row turns out not to exist the
// transaction rolls back and the entry disappears with it.
func (r *RecordRepository) Delete(ctx context.Context, actorID, recordID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	entry := &authorship.Entry{
		RecordID: recordID,
		UserID:   actorID,
		Action:   authorship.ActionDeleted.Describe(recordID),
	}
	if _, err := insertEntry(ctx, tx, entry); err != nil {
		r.log.Error("failed to log record deletion", "record_id", recordID, "error", err)
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM records WHERE id = $1`, recordID)
	if err != nil {
		r.log.Error("failed to delete record", "record_id", recordID, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return record.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *RecordRepository) Get(ctx context.Context, recordID int64) (*record.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM records WHERE id = $1`, recordColumns)

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		r.log.Error("failed to get record", "record_id", recordID, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	return rec, nil
}

// List builds the query from whitelisted column names only; the filter value
// itself is always a bind parameter.
func (r *RecordRepository) List(ctx context.Context, q record.ListQuery) ([]record.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM records`, recordColumns)
	args := []any{}
	argIndex := 1

	if q.Filter != nil {
		col := q.Filter.Field.Column()
		if col == "" {
			return nil, fmt.Errorf("%w: filter field %q", record.ErrValidation, q.Filter.Field)
		}
		if q.Filter.Substring {
			query += fmt.Sprintf(" WHERE %s ILIKE '%%' || $%d || '%%'", col, argIndex)
		} else {
			query += fmt.Sprintf(" WHERE %s = $%d", col, argIndex)
		}
		args = append(args, q.Filter.Value)
		argIndex++
	}

	orderCol := q.OrderBy.Column()
	if orderCol == "" {
		orderCol = string(record.FieldID)
	}
	query += fmt.Sprintf(" ORDER BY %s, id", orderCol)

	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, q.Limit)
		argIndex++

		if q.Offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, q.Offset)
		}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *RecordRepository) ListByChamber(ctx context.Context, registered bool) ([]record.Record, error) {
	op := "="
	if registered {
		op = "<>"
	}
	query := fmt.Sprintf(`SELECT %s FROM records WHERE chamber_ref %s $1 ORDER BY id`, recordColumns, op)

	rows, err := r.pool.Query(ctx, query, record.ChamberNone)
	if err != nil {
		r.log.Error("failed to list records by chamber", "registered", registered, "error", err)
		return nil, fmt.Errorf("list records by chamber: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]record.Record, error) {
	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func scanRecord(row pgx.Row) (*record.Record, error) {
	var rec record.Record
	err := row.Scan(
		&rec.ID, &rec.Nature, &rec.Regeste, &rec.DocDate,
		&rec.Motive, &rec.RegDate, &rec.RegMode, &rec.ChamberRef,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
