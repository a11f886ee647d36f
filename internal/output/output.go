// Package output renders replay reports as text diagrams, FEN lines or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// maxLineLength is the wrap column for move lists.
const maxLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break as
// needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// EndLine terminates the current line if anything was written to it.
func (o *OutputWriter) EndLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// DrawBoard writes an ASCII diagram of board. The board's orientation
// decides which side is drawn at the bottom; coordinates adds rank and
// file labels.
func DrawBoard(w io.Writer, board *chess.Board, coordinates bool) {
	rows, cols := displayOrder(board.Orientation)

	for _, row := range rows {
		var sb strings.Builder
		if coordinates {
			sb.WriteByte(byte('8' - row))
			sb.WriteByte(' ')
		}
		for i, col := range cols {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(squareChar(board.GetByIndex(row, col)))
		}
		fmt.Fprintln(w, sb.String())
	}

	if coordinates {
		var sb strings.Builder
		sb.WriteString("  ")
		for i, col := range cols {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(chess.FirstCol + col))
		}
		fmt.Fprintln(w, sb.String())
	}
}

// displayOrder returns grid rows top to bottom and columns left to right.
func displayOrder(o chess.Orientation) (rows, cols []int) {
	rows = make([]int, 8)
	cols = make([]int, 8)
	for i := 0; i < 8; i++ {
		if o == chess.BlackBottom {
			rows[i], cols[i] = 7-i, 7-i
		} else {
			rows[i], cols[i] = i, i
		}
	}
	return rows, cols
}

func squareChar(p chess.Piece) byte {
	if p.IsEmpty() {
		return '.'
	}
	return p.Letter()
}

// OutputReport writes a report in the plain text format: a header, the
// move list when requested, query answers, rejected commands and the final
// position.
func OutputReport(report *processing.Report, cfg *config.Config, w io.Writer) {
	fmt.Fprintf(w, "[Script %q]\n", report.Name)
	if report.InitialFEN != "" {
		fmt.Fprintf(w, "[Start %q]\n", report.InitialFEN)
	}
	if report.ECO != "" {
		fmt.Fprintf(w, "[ECO %q]\n", report.ECO)
		fmt.Fprintf(w, "[Opening %q]\n", report.Opening)
	}
	if report.Duplicate {
		fmt.Fprintln(w, "[Duplicate \"true\"]")
	}
	fmt.Fprintln(w)

	if cfg.Output.ShowMoves && len(report.Moves) > 0 {
		outputMoves(report.Moves, w)
		fmt.Fprintln(w)
	}

	for _, q := range report.Queries {
		outputQuery(q, cfg, w)
	}

	for _, err := range report.Errors {
		fmt.Fprintf(w, "! %v\n", err)
	}
	if report.Stopped {
		fmt.Fprintln(w, "! stopped")
	}

	if cfg.Output.ShowBoard && report.Final != nil {
		DrawBoard(w, report.Final, cfg.Output.Coordinates)
	}
	fmt.Fprintf(w, "[Final %q]\n", report.FinalFEN)
	fmt.Fprintf(w, "[Ply \"%d\"] [Material \"%d-%d\"]\n", report.Ply, report.WhiteMaterial, report.BlackMaterial)
	fmt.Fprintln(w)
}

// outputMoves writes the applied moves with move numbers, wrapping long
// lines.
func outputMoves(moves []processing.MoveRecord, w io.Writer) {
	ow := NewOutputWriter(w, maxLineLength)
	first := true
	for _, m := range moves {
		switch {
		case m.Side == chess.White:
			ow.Write(fmt.Sprintf("%d.", m.Number))
		case first:
			ow.Write(fmt.Sprintf("%d...", m.Number))
		}
		ow.Write(moveText(m))
		first = false
	}
	ow.EndLine()
}

// moveText is the hyphenated long form, with "x" for captures.
func moveText(m processing.MoveRecord) string {
	r := m.Result
	sep := "-"
	if !r.Captured.IsEmpty() {
		sep = "x"
	}
	return r.From.String() + sep + r.To.String()
}

func outputQuery(q processing.QueryRecord, cfg *config.Config, w io.Writer) {
	switch q.Kind {
	case parser.MovesCommand:
		fmt.Fprintf(w, "%s: %s\n", q.Text, strings.Join(q.Squares, " "))
	case parser.OccupantCommand:
		fmt.Fprintf(w, "%s: %s\n", q.Text, q.Piece)
	case parser.ShowCommand:
		fmt.Fprintf(w, "%s:\n", q.Text)
		DrawBoard(w, q.Board, cfg.Output.Coordinates)
	default:
		fmt.Fprintf(w, "%s: %s\n", q.Text, q.FEN)
	}
}
