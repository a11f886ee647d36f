// Package processing replays parsed move scripts against games and collects
// what happened into reports.
package processing

import (
	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/engine"
	"github.com/lgbarn/playchess-go/internal/errors"
	"github.com/lgbarn/playchess-go/internal/hashing"
	"github.com/lgbarn/playchess-go/internal/parser"
)

// MoveRecord is one applied move.
type MoveRecord struct {
	Ply    int          // 1-based ply within the current position setup
	Number int          // full-move number before the move
	Side   chess.Colour // side nominally to move before the move
	Line   int
	Text   string
	Result *engine.MoveResult
}

// QueryRecord is the answer to a non-move command.
type QueryRecord struct {
	Kind    parser.CommandKind
	Line    int
	Text    string
	Squares []string     // moves
	Piece   chess.Piece  // occupant
	Board   *chess.Board // show
	FEN     string       // show, fen, reset
}

// Report holds the outcome of replaying one script.
type Report struct {
	Index      int
	Name       string
	InitialFEN string
	FinalFEN   string
	Ply        int
	Moves      []MoveRecord
	Queries    []QueryRecord
	Errors     []error
	Final      *chess.Board
	Status     engine.Status
	Hash       uint64

	WhiteMaterial int
	BlackMaterial int

	// Stopped is set when the script ended early because of StopOnError
	// or the ply limit.
	Stopped bool

	// Duplicate is set by the caller when the final position was already
	// seen in another script.
	Duplicate bool

	// ECO and Opening are set by the caller when an opening table
	// classifies the moves.
	ECO     string
	Opening string

	// MoveLog lists applied moves as "e2-e4" for storage.
	MoveLog []string
}

// Failed reports whether any command was rejected.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// Replay runs every command of script against g and returns the report. g
// is left in the final position. Rejected commands are recorded and, unless
// cfg.Script.StopOnError is set, skipped.
func Replay(g *engine.Game, script *parser.Script, cfg *config.Config) *Report {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	report := &Report{
		Name:       script.Name,
		InitialFEN: g.FEN(),
	}

	applied := 0
	for _, cmd := range script.Commands {
		if cfg.Script.PlyLimit > 0 && applied >= cfg.Script.PlyLimit && cmd.Kind == parser.MoveCommand {
			report.Stopped = true
			cfg.Logf(2, "%s: ply limit %d reached at line %d\n", script.Name, cfg.Script.PlyLimit, cmd.Line)
			break
		}

		if err := runCommand(g, cmd, report); err != nil {
			scriptErr := &errors.ScriptError{Err: err, File: script.Name, Line: cmd.Line, Text: cmd.Text}
			report.Errors = append(report.Errors, scriptErr)
			cfg.Logf(2, "%v\n", scriptErr)
			if cfg.Script.StopOnError {
				report.Stopped = true
				break
			}
			continue
		}
		if cmd.Kind == parser.MoveCommand {
			applied++
			last := report.Moves[len(report.Moves)-1]
			cfg.Logf(2, "%s: %d. %s %s\n", script.Name, last.Ply, cmd, last.Result.Kind)
		}
	}

	finish(g, report)
	return report
}

// runCommand executes one command, appending to the report on success.
func runCommand(g *engine.Game, cmd parser.Command, report *Report) error {
	switch cmd.Kind {
	case parser.MoveCommand:
		number, side := g.MoveNumber(), g.ToMove()
		result, err := g.ApplyMove(cmd.From, cmd.To)
		if err != nil {
			return err
		}
		report.Moves = append(report.Moves, MoveRecord{
			Ply:    g.Ply(),
			Number: number,
			Side:   side,
			Line:   cmd.Line,
			Text:   cmd.Text,
			Result: result,
		})
		report.MoveLog = append(report.MoveLog, cmd.String())

	case parser.MovesCommand:
		squares, err := g.LegalMoves(cmd.Square)
		if err != nil {
			return err
		}
		report.Queries = append(report.Queries, query(cmd, func(q *QueryRecord) { q.Squares = squares }))

	case parser.OccupantCommand:
		piece, err := g.Occupant(cmd.Square)
		if err != nil {
			return err
		}
		report.Queries = append(report.Queries, query(cmd, func(q *QueryRecord) { q.Piece = piece }))

	case parser.ResetCommand:
		g.Reset()
		report.Queries = append(report.Queries, query(cmd, func(q *QueryRecord) { q.FEN = g.FEN() }))

	case parser.FENCommand:
		if err := g.LoadFEN(cmd.FEN); err != nil {
			return err
		}
		report.Queries = append(report.Queries, query(cmd, func(q *QueryRecord) { q.FEN = g.FEN() }))

	case parser.FlipCommand:
		g.Flip()

	case parser.ShowCommand:
		report.Queries = append(report.Queries, query(cmd, func(q *QueryRecord) {
			q.Board = g.Board()
			q.FEN = g.FEN()
		}))
	}
	return nil
}

func query(cmd parser.Command, fill func(*QueryRecord)) QueryRecord {
	q := QueryRecord{Kind: cmd.Kind, Line: cmd.Line, Text: cmd.Text}
	fill(&q)
	return q
}

// finish records the final position.
func finish(g *engine.Game, report *Report) {
	report.Final = g.Board()
	report.FinalFEN = g.FEN()
	report.Ply = g.Ply()
	report.Status = g.Status()
	report.Hash = hashing.PositionHash(g)
	report.WhiteMaterial = report.Final.Material(chess.White)
	report.BlackMaterial = report.Final.Material(chess.Black)
}
