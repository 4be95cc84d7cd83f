// Package rowparser tokenizes raw bank-export text into rows of fields.
// Bank portals disagree on delimiters, quoting, and line endings, so this
// does its own char-by-char scan instead of encoding/csv, which rejects
// ragged rows and fixed delimiters outright.
package rowparser

import (
	"fmt"
	"strings"
)

// candidate delimiters, in tie-break preference order.
var delimiters = []rune{',', ';', '\t'}

// Parse splits raw statement text into rows of trimmed fields. Rows that are
// entirely blank are dropped. The only failure is text with no content at
// all; per-row oddities never fail the batch.
func Parse(text string) ([][]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("statement text is empty")
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")

	delim := detectDelimiter(firstNonEmpty(lines))

	var rows [][]string
	for _, line := range lines {
		row := splitLine(line, delim)
		if IsBlank(row) {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("statement text has no parsable rows")
	}
	return rows, nil
}

// IsBlank reports whether every field in a row is empty.
func IsBlank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}

func firstNonEmpty(lines []string) string {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return l
		}
	}
	return ""
}

// detectDelimiter picks whichever candidate splits the header line into the
// most columns. Comma wins ties because it is listed first.
func detectDelimiter(line string) rune {
	best := delimiters[0]
	bestCount := len(splitLine(line, delimiters[0]))
	for _, d := range delimiters[1:] {
		if n := len(splitLine(line, d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

// splitLine scans one line honoring double-quote quoting: a quote toggles
// quoted mode, a doubled quote inside quoted mode emits one literal quote,
// and the delimiter only separates fields outside quoted mode.
func splitLine(line string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}
