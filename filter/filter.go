// Package filter narrows JSON text down to the lines that mention a
// keyword. It works on text, not on parsed trees.
package filter

import (
	"strings"
)

// NoMatches is returned by Contains when no line matches.
const NoMatches = "// no matches"

// Contains keeps the '\n' separated lines of text that contain keyword,
// ignoring case, each followed by '\n'. An empty or all-space keyword
// returns text unchanged.
func Contains(text, keyword string) string {
	if strings.TrimSpace(keyword) == "" {
		return text
	}
	keyword = strings.ToLower(keyword)
	sb := &strings.Builder{}
	for _, ln := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(ln), keyword) {
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	if sb.Len() == 0 {
		return NoMatches
	}
	return sb.String()
}
