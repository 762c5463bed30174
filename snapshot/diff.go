package snapshot

import (
	"strings"

	"github.com/signadot/rtdbview/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText returns a line diff of a and b pretty printed with sorted
// keys, one "-", "+" or " " prefixed line per source line. It is empty
// when the trees are equal.
func DiffText(a, b *ir.Node) (string, error) {
	ta, err := pretty(a)
	if err != nil {
		return "", err
	}
	tb, err := pretty(b)
	if err != nil {
		return "", err
	}
	if ta == tb {
		return "", nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(ta, tb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	out := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(ln)
		}
	}
	return out.String(), nil
}
