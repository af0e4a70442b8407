package authorship

import (
	"fmt"
	"time"
)

// Action is the kind of catalogue mutation an entry describes.
type Action string

const (
	ActionAdded    Action = "added"
	ActionModified Action = "modified"
	ActionDeleted  Action = "deleted"
)

// Describe renders the persisted action text. The record identifier is
// embedded in the text itself so the entry stays readable even after the
// record is gone.
func (a Action) Describe(recordID int64) string {
	switch a {
	case ActionAdded:
		return fmt.Sprintf("added record no. %d to the catalogue", recordID)
	case ActionModified:
		return fmt.Sprintf("modified record no. %d", recordID)
	case ActionDeleted:
		return fmt.Sprintf("deleted record no. %d", recordID)
	default:
		return fmt.Sprintf("%s record no. %d", a, recordID)
	}
}

func (a Action) Valid() bool {
	switch a {
	case ActionAdded, ActionModified, ActionDeleted:
		return true
	}
	return false
}

// Entry is one immutable row of the authorship log. RecordID is a snapshot of
// the record identifier at the time of the action, not a live relational
// link: it stays meaningful after the record is deleted.
type Entry struct {
	ID        int64     `json:"id"`
	RecordID  int64     `json:"record_id"`
	UserID    int64     `json:"user_id"`
	UserLogin string    `json:"user_login,omitempty"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
