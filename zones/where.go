package zones

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type env struct {
	Name   string  `expr:"name"`
	Visits int64   `expr:"visits"`
	Ratio  float64 `expr:"ratio"`
}

// Compile checks a predicate over name, visits and ratio, for example
//
//	visits > 10 && name startsWith "arena"
func Compile(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWhere, err)
	}
	return prg, nil
}

// Where returns the summary restricted to zones matching src. Total stays
// the total of all zones, so ratios are unchanged.
func Where(s *Summary, src string) (*Summary, error) {
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	res := &Summary{Total: s.Total}
	for _, z := range s.Zones {
		out, err := expr.Run(prg, env{Name: z.Name, Visits: z.Visits, Ratio: z.Ratio})
		if err != nil {
			return nil, fmt.Errorf("%w: zone %q: %w", ErrWhere, z.Name, err)
		}
		if out.(bool) {
			res.Zones = append(res.Zones, z)
		}
	}
	return res, nil
}
