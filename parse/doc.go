// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, _ := parse.ParseString(`{"zone1": {"visits": 4}}`)
//	if node == nil {
//	    // not JSON
//	}
//
//	// reject anything malformed
//	node, err := parse.Parse(data, parse.Strict())
//
// # Leniency
//
// The default mode never fails. Unparsable numbers read as 0 (or 0.0 when
// the text has a '.'), unknown escapes are dropped, an array stops at the
// first element that is not followed by ',' or ']', and an object with a
// broken member yields nil. Elements and members that fail are kept as
// null. Input after the first value is ignored.
//
// Integers and floats stay distinct: "42" parses to an Int64 node and
// "42.0" to a Float64 node.
//
// The parser is recursive, so nesting depth is bounded only by the stack.
// Deeply nested hostile input can exhaust it.
//
// # Related Packages
//
//   - github.com/signadot/rtdbview/ir - value tree
//   - github.com/signadot/rtdbview/encode - encode trees to text
//   - github.com/signadot/rtdbview/token - scanning
package parse
