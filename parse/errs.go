package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/rtdbview/token"
)

var (
	ErrSyntax   = errors.New("syntax error")
	ErrNumber   = fmt.Errorf("%w: bad number", ErrSyntax)
	ErrString   = fmt.Errorf("%w: bad string", ErrSyntax)
	ErrEmpty    = fmt.Errorf("%w: empty document", ErrSyntax)
	ErrTrailing = fmt.Errorf("%w: trailing input", ErrSyntax)
)

// SyntaxErr is returned by strict parsing.
type SyntaxErr struct {
	Err error
	Pos token.Pos
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Offset() int {
	return e.Pos.I
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func syntaxErr(e error, p *token.Pos) *SyntaxErr {
	return &SyntaxErr{Err: e, Pos: *p}
}

func expectedErr(what string, t *token.Token) *SyntaxErr {
	if t.EOF() {
		return syntaxErr(fmt.Errorf("%w: expected %s, got end of input", ErrSyntax, what), t.Pos)
	}
	got := t.Type.String()
	if len(t.Bytes) != 0 {
		got = fmt.Sprintf("%q", t.Bytes)
	}
	return syntaxErr(fmt.Errorf("%w: expected %s, got %s", ErrSyntax, what, got), t.Pos)
}
