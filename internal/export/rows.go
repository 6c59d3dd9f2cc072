// Package export renders the backend's log text as a paginated PDF table.
package export

import "strings"

// Row is one log line in the exported table.
type Row struct {
	Index int // 1-based
	Text  string
}

// Rows splits logs on newlines and numbers each line from 1. Carriage
// returns are dropped. A trailing newline does not produce an extra empty
// row; empty lines anywhere else are kept so numbering matches the source.
func Rows(logs string) []Row {
	if logs == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(logs, "\r", ""), "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = Row{Index: i + 1, Text: line}
	}
	return rows
}
