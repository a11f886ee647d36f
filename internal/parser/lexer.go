package parser

import (
	"bufio"
	"io"
	"strings"
)

// commentChar starts a comment running to the end of the line.
const commentChar = '#'

// Lexer splits script input into non-empty lines of fields.
type Lexer struct {
	scanner    *bufio.Scanner
	lineNumber int
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{scanner: bufio.NewScanner(r)}
}

// NextLine returns the fields of the next line that holds anything besides
// whitespace and comments, together with its trimmed text. ok is false at
// end of input; err reports a read failure.
func (l *Lexer) NextLine() (fields []string, text string, ok bool, err error) {
	for l.scanner.Scan() {
		l.lineNumber++
		text = stripComment(l.scanner.Text())
		fields = strings.Fields(text)
		if len(fields) > 0 {
			return fields, strings.TrimSpace(text), true, nil
		}
	}
	return nil, "", false, l.scanner.Err()
}

// LineNumber returns the number of the line most recently read.
func (l *Lexer) LineNumber() int {
	return l.lineNumber
}

// stripComment removes a trailing comment from a line.
func stripComment(line string) string {
	if i := strings.IndexByte(line, commentChar); i >= 0 {
		return line[:i]
	}
	return line
}

// isMoveNumber reports whether a field is a move number such as "1." or
// "12...", which scripts may include for readability.
func isMoveNumber(field string) bool {
	digits := strings.TrimRight(field, ".")
	if digits == "" || digits == field {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// splitMove splits "e2-e4" or "e2e4" into its two square names. The names
// are not validated; that is the engine's job.
func splitMove(field string) (from, to string, ok bool) {
	if i := strings.IndexByte(field, '-'); i >= 0 {
		from, to = field[:i], field[i+1:]
		return from, to, from != "" && to != "" && !strings.Contains(to, "-")
	}
	if len(field) == 4 {
		return field[:2], field[2:], true
	}
	return "", "", false
}
