package token

import "fmt"

type TokenType int

const (
	TNone TokenType = iota
	TCurlyOpen
	TCurlyClose
	TSquareOpen
	TSquareClose
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNone:        "TNone",
		TCurlyOpen:   "TCurlyOpen",
		TCurlyClose:  "TCurlyClose",
		TSquareOpen:  "TSquareOpen",
		TSquareClose: "TSquareClose",
		TColon:       "TColon",
		TComma:       "TComma",
		TString:      "TString",
		TNumber:      "TNumber",
		TTrue:        "TTrue",
		TFalse:       "TFalse",
		TNull:        "TNull",
	}[t]
}

// Token is a lookahead result. Bytes holds the consumed bareword for
// TTrue, TFalse, TNull and a TNone bareword; it is empty otherwise.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// EOF reports whether t is the end of input marker.
func (t *Token) EOF() bool {
	return t.Type == TNone && len(t.Bytes) == 0 && t.Pos.I >= len(t.Pos.D.d)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
