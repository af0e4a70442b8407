package authorship

import "context"

// Repository persists authorship entries. The log is append-only: there is no
// update or delete operation, here or anywhere else.
type Repository interface {
	Append(ctx context.Context, entry *Entry) (int64, error)
	List(ctx context.Context) ([]Entry, error)
}
