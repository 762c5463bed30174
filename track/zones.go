package track

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/signadot/rtdbview/debug"
)

type Zones struct {
	Store Store
}

func VisitPath(zone string) string {
	return path.Join("zones", zone, "visits")
}

// Visit counts one visit to zone and returns the new count.
func (z *Zones) Visit(ctx context.Context, zone string) (int64, error) {
	if strings.TrimSpace(zone) == "" || strings.Contains(zone, "/") {
		return 0, fmt.Errorf("invalid zone name %q", zone)
	}
	n, err := z.Store.Increment(ctx, VisitPath(zone), 1)
	if err != nil {
		return 0, fmt.Errorf("error recording visit to %s: %w", zone, err)
	}
	if debug.Track() {
		debug.Logf("zone %s visit -> %d\n", zone, n)
	}
	return n, nil
}
