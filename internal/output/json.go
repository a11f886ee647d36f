package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// JSONReport represents a replay report in JSON format.
type JSONReport struct {
	Script     string      `json:"script"`
	InitialFEN string      `json:"initialFEN,omitempty"`
	FinalFEN   string      `json:"finalFEN"`
	PlyCount   int         `json:"plyCount"`
	Status     string      `json:"status"`
	ECO        string      `json:"eco,omitempty"`
	Opening    string      `json:"opening,omitempty"`
	Moves      []JSONMove  `json:"moves,omitempty"`
	Queries    []JSONQuery `json:"queries,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Board      []string    `json:"board,omitempty"`
	Material   JSONScore   `json:"material"`
	Hash       string      `json:"hash"`
	Stopped    bool        `json:"stopped,omitempty"`
	Duplicate  bool        `json:"duplicate,omitempty"`
}

// JSONMove represents an applied move in JSON format.
type JSONMove struct {
	Ply        int      `json:"ply"`
	MoveNumber int      `json:"moveNumber"`
	Color      string   `json:"color"` // "white" or "black"
	From       string   `json:"from"`
	To         string   `json:"to"`
	Piece      string   `json:"piece"`
	Captured   string   `json:"captured,omitempty"`
	Kind       string   `json:"kind"`
	Changed    []string `json:"changed"`
	Line       int      `json:"line"`
}

// JSONQuery represents the answer to a non-move command.
type JSONQuery struct {
	Command string   `json:"command"`
	Line    int      `json:"line"`
	Squares []string `json:"squares,omitempty"`
	Piece   string   `json:"piece,omitempty"`
	Board   []string `json:"board,omitempty"`
	FEN     string   `json:"fen,omitempty"`
}

// JSONScore holds a material count per side.
type JSONScore struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// OutputReportsJSON writes reports as one indented JSON document.
func OutputReportsJSON(reports []*processing.Report, w io.Writer) error {
	out := &JSONOutput{Reports: make([]*JSONReport, len(reports))}
	for i, r := range reports {
		out.Reports[i] = ReportToJSON(r)
	}
	return encodeJSON(w, out)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ReportToJSON converts a replay report to JSON format.
func ReportToJSON(report *processing.Report) *JSONReport {
	jr := &JSONReport{
		Script:     report.Name,
		InitialFEN: report.InitialFEN,
		FinalFEN:   report.FinalFEN,
		PlyCount:   report.Ply,
		Status:     report.Status.String(),
		Material:   JSONScore{White: report.WhiteMaterial, Black: report.BlackMaterial},
		Hash:       formatHash(report.Hash),
		Stopped:    report.Stopped,
		Duplicate:  report.Duplicate,
		ECO:        report.ECO,
		Opening:    report.Opening,
	}
	if report.Final != nil {
		jr.Board = boardRows(report.Final)
	}

	for _, m := range report.Moves {
		jr.Moves = append(jr.Moves, convertMove(m))
	}
	for _, q := range report.Queries {
		jr.Queries = append(jr.Queries, convertQuery(q))
	}
	for _, err := range report.Errors {
		jr.Errors = append(jr.Errors, err.Error())
	}
	return jr
}

func convertMove(m processing.MoveRecord) JSONMove {
	r := m.Result
	jm := JSONMove{
		Ply:        m.Ply,
		MoveNumber: m.Number,
		Color:      colorName(m.Side),
		From:       r.From.String(),
		To:         r.To.String(),
		Piece:      pieceName(r.Piece),
		Kind:       r.Kind.String(),
		Changed:    chess.SquareNames(r.Changed),
		Line:       m.Line,
	}
	if !r.Captured.IsEmpty() {
		jm.Captured = pieceName(r.Captured)
	}
	return jm
}

func convertQuery(q processing.QueryRecord) JSONQuery {
	jq := JSONQuery{Command: q.Kind.String(), Line: q.Line, FEN: q.FEN}
	switch q.Kind {
	case parser.MovesCommand:
		jq.Squares = append([]string{}, q.Squares...)
	case parser.OccupantCommand:
		jq.Piece = strings.ToLower(q.Piece.String())
	case parser.ShowCommand:
		jq.Board = boardRows(q.Board)
	}
	return jq
}

// boardRows lists the ranks from 8 down to 1 as FEN-style letters with
// '.' for empty squares, independent of orientation.
func boardRows(board *chess.Board) []string {
	rows := make([]string, 8)
	for row := 0; row < 8; row++ {
		buf := make([]byte, 8)
		for col := 0; col < 8; col++ {
			buf[col] = squareChar(board.GetByIndex(row, col))
		}
		rows[row] = string(buf)
	}
	return rows
}

func colorName(c chess.Colour) string {
	if c == chess.Black {
		return "black"
	}
	return "white"
}

// pieceName returns e.g. "knight", or "" for an empty square.
func pieceName(p chess.Piece) string {
	switch p.Kind {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
