package parse

import (
	"fmt"

	"github.com/signadot/rtdbview/debug"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/token"
)

// Parse parses the first JSON value in d.
//
// By default parsing is lenient and never returns an error. A nil node
// means the value could not be parsed; a JSON null parses as ir.Null().
// With Strict, malformed input yields a *SyntaxErr instead.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		s:    token.NewScanner(d, pOpts.TokenizeOpts()...),
		opts: pOpts,
	}
	tok := p.s.Next()
	if pOpts.strict && tok.EOF() {
		return nil, syntaxErr(ErrEmpty, tok.Pos)
	}
	res, err := p.value(&tok)
	if err != nil {
		return nil, err
	}
	if pOpts.strict && p.s.SkipSpace() {
		return nil, syntaxErr(ErrTrailing, p.s.Pos())
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	s    *token.Scanner
	opts *parseOpts
}

// fail returns the failure for the current construct: an error in strict
// mode, otherwise a nil node.
func (p *parser) fail(err *SyntaxErr) (*ir.Node, error) {
	if p.opts.strict {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("lenient parse: %s\n", err)
	}
	return nil, nil
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) *ir.Node {
	if p.opts.positions != nil && node != nil && pos != nil {
		p.opts.positions[node] = pos
	}
	return node
}

// value parses the value introduced by tok, which the caller has already
// looked up.
func (p *parser) value(tok *token.Token) (*ir.Node, error) {
	switch tok.Type {
	case token.TString:
		s, err := p.s.ReadString()
		if err != nil && p.opts.strict {
			return nil, syntaxErr(fmt.Errorf("%w: %w", ErrString, err), tok.Pos)
		}
		return p.trackPos(ir.FromString(s), tok.Pos), nil
	case token.TNumber:
		word := p.s.Word()
		n, ok := numberNode(word)
		if p.opts.strict && (!ok || !validNumber(word)) {
			return nil, syntaxErr(fmt.Errorf("%w %q", ErrNumber, word), tok.Pos)
		}
		if !ok && debug.Parse() {
			debug.Logf("lenient parse: number %q read as 0 at %s\n", word, tok.Pos)
		}
		return p.trackPos(n, tok.Pos), nil
	case token.TCurlyOpen:
		return p.object(tok)
	case token.TSquareOpen:
		return p.array(tok)
	case token.TTrue:
		return p.trackPos(ir.FromBool(true), tok.Pos), nil
	case token.TFalse:
		return p.trackPos(ir.FromBool(false), tok.Pos), nil
	case token.TNull:
		return p.trackPos(ir.Null(), tok.Pos), nil
	}
	return p.fail(expectedErr("value", tok))
}

// member parses a value inside a container. A failed value is kept as
// null so the container survives.
func (p *parser) member(tok *token.Token) (*ir.Node, error) {
	v, err := p.value(tok)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return ir.Null(), nil
	}
	return v, nil
}

// object parses `{ "key" : value, ... }`. Any break in that grammar
// fails the whole object.
func (p *parser) object(open *token.Token) (*ir.Node, error) {
	p.s.Advance()
	obj := &ir.Node{Type: ir.ObjectType}
	index := map[string]int{}
	afterComma := false
	for {
		tok := p.s.Next()
		switch tok.Type {
		case token.TNone:
			return p.fail(expectedErr("key or '}'", &tok))
		case token.TCurlyClose:
			if afterComma && p.opts.strict {
				return nil, expectedErr("key", &tok)
			}
			p.s.Advance()
			return p.trackPos(obj, open.Pos), nil
		default:
			if tok.Type != token.TString && p.opts.strict {
				return nil, expectedErr("string key", &tok)
			}
			// the key is read as a string whatever the lookahead said
			name, err := p.s.ReadString()
			if err != nil && p.opts.strict {
				return nil, syntaxErr(fmt.Errorf("%w: %w", ErrString, err), tok.Pos)
			}
			colon := p.s.Next()
			if colon.Type != token.TColon {
				return p.fail(expectedErr("':'", &colon))
			}
			p.s.Advance()
			vTok := p.s.Next()
			v, err := p.member(&vTok)
			if err != nil {
				return nil, err
			}
			if i, ok := index[name]; ok {
				obj.Values[i] = v
			} else {
				index[name] = len(obj.Fields)
				obj.Fields = append(obj.Fields, ir.FromString(name))
				obj.Values = append(obj.Values, v)
			}
		}

		sep := p.s.Next()
		switch sep.Type {
		case token.TComma:
			p.s.Advance()
			afterComma = true
		case token.TCurlyClose:
			p.s.Advance()
			return p.trackPos(obj, open.Pos), nil
		default:
			return p.fail(expectedErr("',' or '}'", &sep))
		}
	}
}

// array parses `[ value, ... ]`. In lenient mode anything other than ','
// or ']' after an element ends the array with what was read so far.
func (p *parser) array(open *token.Token) (*ir.Node, error) {
	p.s.Advance()
	arr := &ir.Node{Type: ir.ArrayType, Values: []*ir.Node{}}
	afterComma := false
	for {
		tok := p.s.Next()
		switch tok.Type {
		case token.TNone:
			return p.fail(expectedErr("value or ']'", &tok))
		case token.TSquareClose:
			if afterComma && p.opts.strict {
				return nil, expectedErr("value", &tok)
			}
			p.s.Advance()
			return p.trackPos(arr, open.Pos), nil
		default:
			v, err := p.member(&tok)
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, v)
		}

		sep := p.s.Next()
		switch sep.Type {
		case token.TComma:
			p.s.Advance()
			afterComma = true
		case token.TSquareClose:
			p.s.Advance()
			return p.trackPos(arr, open.Pos), nil
		default:
			if p.opts.strict {
				return nil, expectedErr("',' or ']'", &sep)
			}
			if debug.Parse() {
				debug.Logf("lenient parse: array ends early at %s\n", sep.Pos)
			}
			return p.trackPos(arr, open.Pos), nil
		}
	}
}
