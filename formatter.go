package quotes

import (
	"strconv"
	"strings"
)

// FormatQuotes renders quotes as a single human-readable list.
// An empty list renders as "[]".
func FormatQuotes(quotes []string) string {
	if len(quotes) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, q := range quotes {
		b.WriteString("  ")
		b.WriteString(strconv.Quote(q))
		if i < len(quotes)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}
