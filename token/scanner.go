package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const wordBreak = "{}[],:\""

// IsWordBreak reports whether r ends a bareword.
func IsWordBreak(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(wordBreak, r)
}

// Scanner is a cursor over a single document. It is not safe for
// concurrent use, but separate Scanners share nothing.
type Scanner struct {
	doc *PosDoc
	d   []byte
	i   int
	opt tokenOpts
}

func NewScanner(d []byte, opts ...TokenOpt) *Scanner {
	s := &Scanner{doc: NewPosDoc(d), d: d}
	for _, o := range opts {
		o(&s.opt)
	}
	return s
}

func (s *Scanner) Offset() int {
	return s.i
}

func (s *Scanner) Pos() *Pos {
	return s.doc.Pos(s.i)
}

func (s *Scanner) AtEOF() bool {
	return s.i >= len(s.d)
}

// peek returns the rune at the cursor, or -1 at end of input.
func (s *Scanner) peek() (rune, int) {
	if s.i >= len(s.d) {
		return -1, 0
	}
	c := s.d[s.i]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRune(s.d[s.i:])
}

// Advance consumes one character.
func (s *Scanner) Advance() {
	_, n := s.peek()
	s.i += n
}

func (s *Scanner) skipSpace() {
	for {
		r, n := s.peek()
		if r < 0 || !unicode.IsSpace(r) {
			return
		}
		s.i += n
	}
}

// Word consumes and returns the bareword at the cursor.
func (s *Scanner) Word() []byte {
	start := s.i
	for {
		r, n := s.peek()
		if r < 0 || IsWordBreak(r) {
			break
		}
		s.i += n
	}
	return s.d[start:s.i]
}

// SkipSpace consumes whitespace and reports whether input remains.
func (s *Scanner) SkipSpace() bool {
	s.skipSpace()
	return !s.AtEOF()
}

// Next skips whitespace and classifies the upcoming token. Barewords are
// consumed; everything else is left at the cursor.
func (s *Scanner) Next() Token {
	s.skipSpace()
	pos := s.doc.Pos(s.i)
	r, _ := s.peek()
	switch r {
	case -1:
		return Token{Type: TNone, Pos: pos}
	case '{':
		return Token{Type: TCurlyOpen, Pos: pos}
	case '}':
		return Token{Type: TCurlyClose, Pos: pos}
	case '[':
		return Token{Type: TSquareOpen, Pos: pos}
	case ']':
		return Token{Type: TSquareClose, Pos: pos}
	case ',':
		return Token{Type: TComma, Pos: pos}
	case ':':
		return Token{Type: TColon, Pos: pos}
	case '"':
		return Token{Type: TString, Pos: pos}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-':
		return Token{Type: TNumber, Pos: pos}
	}
	word := s.Word()
	switch string(word) {
	case "false":
		return Token{Type: TFalse, Pos: pos, Bytes: word}
	case "true":
		return Token{Type: TTrue, Pos: pos, Bytes: word}
	case "null":
		return Token{Type: TNull, Pos: pos, Bytes: word}
	}
	return Token{Type: TNone, Pos: pos, Bytes: word}
}
