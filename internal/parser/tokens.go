// Package parser reads move scripts: plain-text files with one command per
// line that drive a game from the command line.
package parser

// CommandKind identifies a script command.
type CommandKind int

const (
	MoveCommand     CommandKind = iota // e2-e4 or e2e4
	MovesCommand                       // moves <square>
	OccupantCommand                    // occupant <square>
	ResetCommand                       // reset
	FENCommand                         // fen <FEN>
	FlipCommand                        // flip
	ShowCommand                        // show
)

// commandKindNames maps command kinds to their script keywords.
var commandKindNames = [...]string{
	MoveCommand:     "move",
	MovesCommand:    "moves",
	OccupantCommand: "occupant",
	ResetCommand:    "reset",
	FENCommand:      "fen",
	FlipCommand:     "flip",
	ShowCommand:     "show",
}

// String returns the script keyword of the command kind.
func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "unknown"
}

// keywords maps the leading word of a line to its command and the number of
// arguments it takes. FEN takes the rest of the line.
var keywords = map[string]struct {
	kind CommandKind
	args int
}{
	"moves":    {MovesCommand, 1},
	"occupant": {OccupantCommand, 1},
	"reset":    {ResetCommand, 0},
	"fen":      {FENCommand, -1},
	"flip":     {FlipCommand, 0},
	"show":     {ShowCommand, 0},
}

// Command is one parsed script instruction.
type Command struct {
	Kind CommandKind

	// From and To are set for MoveCommand.
	From string
	To   string

	// Square is the argument of MovesCommand and OccupantCommand.
	Square string

	// FEN is the argument of FENCommand.
	FEN string

	Line int    // 1-based source line
	Text string // source text of the command
}

// String renders the command the way it would appear in a script.
func (c Command) String() string {
	switch c.Kind {
	case MoveCommand:
		return c.From + "-" + c.To
	case MovesCommand, OccupantCommand:
		return c.Kind.String() + " " + c.Square
	case FENCommand:
		return "fen " + c.FEN
	}
	return c.Kind.String()
}
