package firebase

import (
	"errors"
	"fmt"
)

var (
	ErrNoDatabase  = errors.New("database URL is empty")
	ErrNoToken     = errors.New("no idToken received")
	ErrBadResponse = errors.New("unexpected response")
	ErrNotSignedIn = errors.New("not signed in")
)

// StatusErr is a non 2xx response.
type StatusErr struct {
	Op      string
	Code    int
	Message string
	Body    []byte
}

func (e *StatusErr) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: %d %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s failed: %d", e.Op, e.Code)
}

func (e *StatusErr) Temporary() bool {
	return e.Code == 429 || e.Code >= 500
}
