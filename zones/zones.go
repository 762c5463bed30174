package zones

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/rtdbview/ir"
)

type Zone struct {
	Name   string
	Visits int64
}

// Extract reads the visits counter of every top level zone. Entries that
// are not objects or have no visits field are skipped. A counter that
// cannot be read as a 32 bit integer invalidates the whole tree.
func Extract(node *ir.Node) ([]Zone, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: root is not an object", ErrInvalid)
	}
	res := make([]Zone, 0, len(node.Fields))
	for i, f := range node.Fields {
		sub := node.Values[i]
		if sub == nil || sub.Type != ir.ObjectType {
			continue
		}
		v := ir.Get(sub, "visits")
		if v == nil {
			continue
		}
		n, err := toInt32(v)
		if err != nil {
			return nil, &ZoneErr{Zone: f.String, Visits: v, Err: err}
		}
		res = append(res, Zone{Name: f.String, Visits: n})
	}
	slices.SortFunc(res, func(a, b Zone) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return res, nil
}

// toInt32 converts a leaf the way a .NET Convert.ToInt32 would: floats
// round half to even, strings must hold a base 10 integer.
func toInt32(v *ir.Node) (int64, error) {
	var n int64
	switch v.Type {
	case ir.NullType:
		return 0, nil
	case ir.BoolType:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case ir.NumberType:
		switch {
		case v.Int64 != nil:
			n = *v.Int64
		case v.Float64 != nil:
			f := math.RoundToEven(*v.Float64)
			if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
				return 0, fmt.Errorf("visits %v out of range", *v.Float64)
			}
			n = int64(f)
		}
	case ir.StringType:
		i, err := strconv.ParseInt(strings.TrimSpace(v.String), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("visits %q is not an integer", v.String)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("visits is an %s", v.Type)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("visits %d out of range", n)
	}
	return n, nil
}

type Stat struct {
	Zone
	Ratio float64
}

type Summary struct {
	Total int64
	Zones []Stat
}

// Stats computes each zone's share of all visits. When there are no
// visits at all every ratio is 0.
func Stats(zones []Zone) *Summary {
	res := &Summary{Zones: make([]Stat, len(zones))}
	for _, z := range zones {
		res.Total += z.Visits
	}
	div := res.Total
	if div == 0 {
		div = 1
	}
	for i, z := range zones {
		res.Zones[i] = Stat{Zone: z, Ratio: float64(z.Visits) / float64(div)}
	}
	return res
}
