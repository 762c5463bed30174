package snapshot

import (
	"fmt"

	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the merge patch taking a to b.
func MergePatch(a, b *ir.Node) (*ir.Node, error) {
	da, err := wire(a)
	if err != nil {
		return nil, err
	}
	db, err := wire(b)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(da, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	patch, err := parse.Parse(d, parse.Strict())
	if err != nil {
		return nil, err
	}
	return numbersFrom(patch, b), nil
}

// numbersFrom replaces number leaves of patch with the number at the same
// place in src. Values in a merge patch are copies of the target, but the
// round trip through float64 turns 3.0 into 3 and rounds large ints.
func numbersFrom(patch, src *ir.Node) *ir.Node {
	if patch == nil || src == nil {
		return patch
	}
	switch patch.Type {
	case ir.NumberType:
		if src.Type == ir.NumberType {
			return src.Clone()
		}
	case ir.ObjectType:
		if src.Type != ir.ObjectType {
			break
		}
		for i, f := range patch.Fields {
			patch.Values[i] = numbersFrom(patch.Values[i], ir.Get(src, f.String))
		}
	case ir.ArrayType:
		if src.Type != ir.ArrayType || len(src.Values) != len(patch.Values) {
			break
		}
		for i := range patch.Values {
			patch.Values[i] = numbersFrom(patch.Values[i], src.Values[i])
		}
	}
	return patch
}

// Apply applies patch to doc. An array patch is a list of RFC 6902
// operations; anything else is a merge patch.
func Apply(doc, patch *ir.Node) (*ir.Node, error) {
	dd, err := wire(doc)
	if err != nil {
		return nil, err
	}
	dp, err := wire(patch)
	if err != nil {
		return nil, err
	}
	var res []byte
	if patch != nil && patch.Type == ir.ArrayType {
		ops, err := jsonpatch.DecodePatch(dp)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		res, err = ops.Apply(dd)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	} else {
		res, err = jsonpatch.MergePatch(dd, dp)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	}
	return parse.Parse(res, parse.Strict())
}
