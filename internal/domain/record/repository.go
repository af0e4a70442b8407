package record

import "context"

// Repository persists catalogue records. Every mutating operation writes the
// matching authorship entry inside the same transaction as the row change, so
// either both persist or neither does. Ordering is part of the contract:
//
//   - Create inserts the record first (the identifier only exists afterwards)
//     and then appends the "added" entry carrying the new identifier.
//   - Update changes the row and appends the "modified" entry with the
//     pre-existing identifier; a missing row aborts without an entry.
//   - Delete appends the "deleted" entry before removing the row, capturing
//     the identifier while it is still live; the entry must not depend on the
//     record existing afterwards.
type Repository interface {
	Create(ctx context.Context, actorID int64, rec *Record) (int64, error)
	Update(ctx context.Context, actorID int64, rec *Record) error
	Delete(ctx context.Context, actorID, recordID int64) error

	Get(ctx context.Context, recordID int64) (*Record, error)
	List(ctx context.Context, query ListQuery) ([]Record, error)
	ListByChamber(ctx context.Context, registered bool) ([]Record, error)
}
