package parse

import (
	"strconv"

	"github.com/signadot/rtdbview/ir"
)

// numberNode converts a number bareword. A word without '.' becomes an
// int64 when it fits and a float64 when only a float parse accepts it
// (exponents, out of range integers). Anything unparsable becomes 0 of
// the kind the '.' test selected; ok reports whether that happened.
func numberNode(word []byte) (n *ir.Node, ok bool) {
	s := string(word)
	if !hasDot(word) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ir.FromInt(i), true
		}
		if f, err := parseFloat(word); err == nil {
			return ir.FromFloat(f), true
		}
		return ir.FromInt(0), false
	}
	f, err := parseFloat(word)
	if err != nil {
		return ir.FromFloat(0), false
	}
	return ir.FromFloat(f), true
}

func hasDot(d []byte) bool {
	for _, c := range d {
		if c == '.' {
			return true
		}
	}
	return false
}

// parseFloat only hands decimal notation to strconv, which would
// otherwise also take hex floats, inf and nan.
func parseFloat(d []byte) (float64, error) {
	for _, c := range d {
		switch c {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.', 'e', 'E', '+', '-':
		default:
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseFloat(string(d), 64)
}

// validNumber reports whether d is a number per RFC 8259.
func validNumber(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return false
	}
	if digits > 1 && d[0] == '0' {
		return false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits+f+e == len(d)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	for i := 1; i < len(d); i++ {
		if !asciiDigit(d[i]) {
			if i == 1 {
				// . must be followed by 1 or more digits
				return 0
			}
			return i
		}
	}
	if len(d) == 1 {
		return 0
	}
	return len(d)
}
