package repo

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnknownGroup = errors.New("unknown record group")
)
