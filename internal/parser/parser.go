package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/playchess-go/internal/errors"
)

// Script is a named, fully parsed move script.
type Script struct {
	Name     string
	Commands []Command
}

// Moves returns the number of move commands in the script.
func (s *Script) Moves() int {
	n := 0
	for _, c := range s.Commands {
		if c.Kind == MoveCommand {
			n++
		}
	}
	return n
}

// Parser parses move scripts into commands.
type Parser struct {
	lexer   *Lexer
	name    string
	pending []Command
}

// NewParser creates a new parser for the given reader. name is used in
// error messages.
func NewParser(r io.Reader, name string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		name:  name,
	}
}

// Next returns the next command. It returns io.EOF when the input is
// exhausted and a *errors.ScriptError wrapping errors.ErrScriptSyntax for an
// unreadable line.
func (p *Parser) Next() (*Command, error) {
	for len(p.pending) == 0 {
		fields, text, ok, err := p.lexer.NextLine()
		if err != nil {
			return nil, &errors.ScriptError{Err: err, File: p.name, Line: p.lexer.LineNumber()}
		}
		if !ok {
			return nil, io.EOF
		}
		cmds, err := p.parseLine(fields, text)
		if err != nil {
			return nil, err
		}
		p.pending = cmds
	}

	cmd := p.pending[0]
	p.pending = p.pending[1:]
	return &cmd, nil
}

// parseLine turns the fields of one line into commands. A keyword line
// yields a single command; otherwise every field must be a move or a move
// number.
func (p *Parser) parseLine(fields []string, text string) ([]Command, error) {
	line := p.lexer.LineNumber()

	if kw, ok := keywords[strings.ToLower(fields[0])]; ok {
		args := fields[1:]
		cmd := Command{Kind: kw.kind, Line: line, Text: text}
		switch {
		case kw.args < 0:
			if len(args) == 0 {
				return nil, p.syntaxError(line, text, "fen needs a position")
			}
			cmd.FEN = strings.Join(args, " ")
		case len(args) != kw.args:
			return nil, p.syntaxError(line, text, fmt.Sprintf("%s takes %d argument(s)", kw.kind, kw.args))
		case kw.args == 1:
			cmd.Square = args[0]
		}
		return []Command{cmd}, nil
	}

	var cmds []Command
	for _, field := range fields {
		if isMoveNumber(field) {
			continue
		}
		from, to, ok := splitMove(field)
		if !ok {
			return nil, p.syntaxError(line, text, fmt.Sprintf("unrecognised command %q", field))
		}
		cmds = append(cmds, Command{Kind: MoveCommand, From: from, To: to, Line: line, Text: field})
	}
	if len(cmds) == 0 {
		return nil, p.syntaxError(line, text, "no moves on line")
	}
	return cmds, nil
}

func (p *Parser) syntaxError(line int, text, detail string) error {
	return &errors.ScriptError{
		Err:  fmt.Errorf("%s: %w", detail, errors.ErrScriptSyntax),
		File: p.name,
		Line: line,
		Text: text,
	}
}

// ParseScript reads a whole script.
func ParseScript(r io.Reader, name string) (*Script, error) {
	p := NewParser(r, name)
	script := &Script{Name: name}
	for {
		cmd, err := p.Next()
		if err == io.EOF {
			return script, nil
		}
		if err != nil {
			return nil, err
		}
		script.Commands = append(script.Commands, *cmd)
	}
}

// ParseString is ParseScript for in-memory text.
func ParseString(text, name string) (*Script, error) {
	return ParseScript(strings.NewReader(text), name)
}
