package ir

import "errors"

var (
	ErrType        = errors.New("unrecognized type")
	ErrUnsupported = errors.New("unsupported go value")
)
