package token

import (
	"encoding/hex"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// ReadString consumes the character at the cursor, normally the opening
// quote, then reads up to an unescaped quote or the end of input.
//
// The returned string is always usable. The error reports the first
// irregularity seen (an unknown escape, a malformed \u escape or a missing
// closing quote) for callers that want to reject such input.
func (s *Scanner) ReadString() (string, error) {
	start := s.doc.Pos(s.i)
	s.Advance()
	buf := make([]byte, 0, 16)
	var firstErr error
	fail := func(e error, p *Pos) {
		if firstErr == nil {
			firstErr = NewTokenizeErr(e, p)
		}
	}
	for {
		r, n := s.peek()
		if r < 0 {
			fail(ErrUnterminated, start)
			return string(buf), firstErr
		}
		s.i += n
		switch r {
		case '"':
			return string(buf), firstErr
		case '\\':
			escPos := s.doc.Pos(s.i - 1)
			c, m := s.peek()
			if c < 0 {
				fail(ErrUnterminated, start)
				return string(buf), firstErr
			}
			s.i += m
			switch c {
			case '"', '\\', '/':
				buf = append(buf, byte(c))
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				if s.opt.legacyEscapes {
					fail(ErrBadEscape, escPos)
					break
				}
				u, ok := s.unicodeEscape()
				if !ok {
					fail(ErrBadUnicode, escPos)
					break
				}
				buf = utf8.AppendRune(buf, u)
			default:
				// dropped
				fail(ErrBadEscape, escPos)
			}
		default:
			buf = append(buf, s.d[s.i-n:s.i]...)
		}
	}
}

// unicodeEscape reads the XXXX of a \uXXXX escape whose \u was already
// consumed, combining a following low surrogate escape when present.
// Nothing is consumed when XXXX is not four hex digits.
func (s *Scanner) unicodeEscape() (rune, bool) {
	r1, ok := hex4(s.d[s.i:])
	if !ok {
		return 0, false
	}
	s.i += 4
	if !utf16.IsSurrogate(r1) {
		return r1, true
	}
	rest := s.d[s.i:]
	if len(rest) >= 6 && rest[0] == '\\' && rest[1] == 'u' {
		if r2, ok := hex4(rest[2:]); ok {
			if r := utf16.DecodeRune(r1, r2); r != unicode.ReplacementChar {
				s.i += 6
				return r, true
			}
		}
	}
	return unicode.ReplacementChar, true
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var b [2]byte
	if _, err := hex.Decode(b[:], d[:4]); err != nil {
		return 0, false
	}
	return rune(b[0])<<8 | rune(b[1]), true
}

// Quote returns v as a JSON string literal. Control characters without a
// short escape are written as \u00XX; everything else is kept as UTF-8.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 || r == 0x7f {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, '"'))
}
