package snapshot

import "errors"

var (
	ErrInvalid = errors.New("invalid JSON")
	ErrPatch   = errors.New("patch failed")
)
