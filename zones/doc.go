// Package zones computes visit analytics over the zone counters written by
// the zone tracker, a tree shaped like
//
//	{"zone1": {"visits": 4}, "zone2": {"visits": 1}}
//
// Extract reads the counters, Stats derives each zone's share of the total,
// Where filters zones with an expr-lang predicate and Render draws text
// bars.
package zones
