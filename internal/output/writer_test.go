package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/engine"
	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/processing"
	"github.com/lgbarn/playchess-go/internal/testutil"
)

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.LogFile = nil
	return cfg
}

func replayTestScript(t *testing.T, text string) *processing.Report {
	t.Helper()
	script, err := parser.ParseString(text, "test.moves")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return processing.Replay(engine.NewGame(), script, testConfig())
}

func TestDrawBoard(t *testing.T) {
	board := chess.NewInitialBoard()

	tests := []struct {
		name        string
		flip        bool
		coordinates bool
		want        string
	}{
		{
			name:        "white bottom",
			coordinates: true,
			want: `8 r n b q k b n r
7 p p p p p p p p
6 . . . . . . . .
5 . . . . . . . .
4 . . . . . . . .
3 . . . . . . . .
2 P P P P P P P P
1 R N B Q K B N R
  a b c d e f g h
`,
		},
		{
			name:        "black bottom",
			flip:        true,
			coordinates: true,
			want: `1 R N B K Q B N R
2 P P P P P P P P
3 . . . . . . . .
4 . . . . . . . .
5 . . . . . . . .
6 . . . . . . . .
7 p p p p p p p p
8 r n b k q b n r
  h g f e d c b a
`,
		},
		{
			name: "no coordinates",
			want: `r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.Copy()
			if tt.flip {
				b.Flip()
			}
			var buf bytes.Buffer
			DrawBoard(&buf, b, tt.coordinates)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e2-e4", "e7-e5", "2.", "d2-d4"} {
		ow.Write(s)
	}
	ow.EndLine()

	testutil.AssertEqual(t, buf.String(), "1. e2-e4\ne7-e5 2.\nd2-d4\n")
}

func TestTextWriter_WriteReport(t *testing.T) {
	report := replayTestScript(t, "e2-e4 d7-d5\ne4-d5\nmoves d8\noccupant d5\ne2-e3\n")

	cfg := testConfig()
	cfg.Output.ShowMoves = true
	var buf bytes.Buffer
	writer := NewReportWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteReport(report))
	testutil.AssertNoError(t, writer.Close())

	out := buf.String()
	for _, want := range []string{
		`[Script "test.moves"]`,
		"1. e2-e4 d7-d5 2. e4xd5",
		"moves d8: d7 d6 d5",
		"occupant d5: White Pawn",
		"! test.moves:5",
		"4 . . . . . . . .",
		`[Final "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2"]`,
		`[Material "139-138"]`,
	} {
		testutil.AssertTrue(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}
}

func TestTextWriter_BlackFirstMove(t *testing.T) {
	script, err := parser.ParseString("e7-e5\n", "black.moves")
	testutil.AssertNoError(t, err)
	g := testutil.MustGame(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	report := processing.Replay(g, script, testConfig())

	cfg := testConfig()
	cfg.Output.ShowMoves = true
	cfg.Output.ShowBoard = false
	var buf bytes.Buffer
	OutputReport(report, cfg, &buf)

	testutil.AssertTrue(t, strings.Contains(buf.String(), "1... e7-e5\n"), buf.String())
	testutil.AssertFalse(t, strings.Contains(buf.String(), "8 r n b"), "board should be hidden")
}

func TestTextWriter_Opening(t *testing.T) {
	report := replayTestScript(t, "e2-e4 c7-c5\n")
	report.ECO = "B20"
	report.Opening = "Sicilian"
	report.Duplicate = true

	var buf bytes.Buffer
	OutputReport(report, testConfig(), &buf)

	testutil.AssertTrue(t, strings.HasPrefix(buf.String(),
		"[Script \"test.moves\"]\n[Start \""+engine.InitialFEN+"\"]\n[ECO \"B20\"]\n[Opening \"Sicilian\"]\n[Duplicate \"true\"]\n"),
		buf.String())

	jr := ReportToJSON(report)
	testutil.AssertEqual(t, jr.ECO, "B20")
	testutil.AssertEqual(t, jr.Opening, "Sicilian")
}

func TestFENWriter(t *testing.T) {
	report := replayTestScript(t, "g1-f3\n")

	var buf bytes.Buffer
	cfg := testConfig()
	cfg.Output.Format = config.FENFormat
	writer := NewReportWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteReport(report))

	testutil.AssertEqual(t, buf.String(), "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1 ; test.moves\n")
}

func TestJSONWriter_Batch(t *testing.T) {
	first := replayTestScript(t, "e2-e4\n")
	second := replayTestScript(t, "e1-g1\nshow\n")

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	testutil.AssertNoError(t, writer.WriteReport(first))
	testutil.AssertNoError(t, writer.WriteReport(second))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer should buffer until Close")
	testutil.AssertNoError(t, writer.Close())

	var decoded JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(decoded.Reports), 2)

	move := decoded.Reports[0].Moves[0]
	testutil.AssertEqual(t, move.From, "e2")
	testutil.AssertEqual(t, move.To, "e4")
	testutil.AssertEqual(t, move.Piece, "pawn")
	testutil.AssertEqual(t, move.Color, "white")
	testutil.AssertEqual(t, move.Kind, "double-step")
	testutil.AssertEqual(t, move.Changed, []string{"e2", "e4"})
	testutil.AssertEqual(t, decoded.Reports[0].Status, "ongoing")
	testutil.AssertEqual(t, decoded.Reports[0].Board[4], "....P...")
	testutil.AssertEqual(t, len(decoded.Reports[0].Hash), 16)

	rejected := decoded.Reports[1]
	testutil.AssertEqual(t, len(rejected.Errors), 1)
	testutil.AssertEqual(t, rejected.Queries[0].Command, "show")
	testutil.AssertEqual(t, rejected.Queries[0].Board[7], "RNBQKBNR")
}

func TestJSONWriter_Single(t *testing.T) {
	report := replayTestScript(t, "occupant a1\noccupant a3\n")

	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, writer.WriteReport(report))
	testutil.AssertTrue(t, buf.Len() > 0, "single writer should write immediately")
	testutil.AssertNoError(t, writer.Flush())

	var decoded JSONReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, decoded.Queries[0].Piece, "white rook")
	testutil.AssertEqual(t, decoded.Queries[1].Piece, "empty")
	testutil.AssertEqual(t, decoded.Material, JSONScore{White: 139, Black: 139})
}
