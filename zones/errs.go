package zones

import (
	"errors"
	"fmt"

	"github.com/signadot/rtdbview/ir"
)

var (
	ErrInvalid = errors.New("invalid zone data")
	ErrWhere   = errors.New("bad where expression")
)

// ZoneErr is a visits counter that could not be read.
type ZoneErr struct {
	Zone   string
	Visits *ir.Node
	Err    error
}

func (e *ZoneErr) Error() string {
	return fmt.Sprintf("%s: zone %q: %s", ErrInvalid, e.Zone, e.Err)
}

func (e *ZoneErr) Unwrap() []error {
	return []error{ErrInvalid, e.Err}
}
