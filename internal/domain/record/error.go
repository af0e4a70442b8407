package record

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid record data")
)
