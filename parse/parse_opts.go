package parse

import (
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/token"
)

type parseOpts struct {
	strict        bool
	legacyEscapes bool
	positions     map[*ir.Node]*token.Pos
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.LegacyEscapes(o.legacyEscapes)}
}

type ParseOption func(*parseOpts)

// Strict turns every leniency into a *SyntaxErr.
func Strict() ParseOption {
	return ParseStrict(true)
}

func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// LegacyEscapes drops \uXXXX escapes instead of decoding them.
func LegacyEscapes(v bool) ParseOption {
	return func(o *parseOpts) { o.legacyEscapes = v }
}

// ParsePositions records the start of every parsed node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
