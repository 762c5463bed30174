package track

import (
	"context"
	"time"

	"github.com/signadot/rtdbview/ir"
)

// Store is the part of *firebase.DB the trackers write through.
type Store interface {
	Put(ctx context.Context, path string, node *ir.Node) error
	Increment(ctx context.Context, path string, delta int64) (int64, error)
}

// Clock returns the current time.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
