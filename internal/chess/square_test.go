package chess

import (
	"errors"
	"testing"

	perrors "github.com/lgbarn/playchess-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", Square{'a', '1'}, false},
		{"h8", Square{'h', '8'}, false},
		{"e4", Square{'e', '4'}, false},
		{"", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
		{"i1", Square{}, true},
		{"a0", Square{}, true},
		{"a9", Square{}, true},
		{"E4", Square{}, true},
		{"4e", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, perrors.ErrMalformedSquare) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrMalformedSquare", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSquareIndex(t *testing.T) {
	tests := []struct {
		sq       string
		row, col int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"e2", 6, 4},
		{"d5", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.sq, func(t *testing.T) {
			row, col := MustSquare(tt.sq).Index()
			if row != tt.row || col != tt.col {
				t.Errorf("%s.Index() = (%d, %d), want (%d, %d)", tt.sq, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq, ok := SquareAt(row, col)
			if !ok {
				t.Fatalf("SquareAt(%d, %d) not ok", row, col)
			}
			r, c := sq.Index()
			if r != row || c != col {
				t.Errorf("SquareAt(%d, %d).Index() = (%d, %d)", row, col, r, c)
			}
			name := sq.String()
			parsed, err := ParseSquare(name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", name, err)
			}
			if parsed != sq {
				t.Errorf("ParseSquare(%q) = %v, want %v", name, parsed, sq)
			}
			seen[name] = true
		}
	}
	if len(seen) != 64 {
		t.Errorf("distinct square names = %d, want 64", len(seen))
	}
}

func TestSquareAtOffBoard(t *testing.T) {
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {9, 9}} {
		if _, ok := SquareAt(idx[0], idx[1]); ok {
			t.Errorf("SquareAt(%d, %d) ok = true, want false", idx[0], idx[1])
		}
	}
}

func TestSquareOffset(t *testing.T) {
	sq, ok := MustSquare("e2").Offset(-2, 0)
	if !ok || sq.String() != "e4" {
		t.Errorf("e2.Offset(-2, 0) = %v, %v; want e4, true", sq, ok)
	}
	if _, ok := MustSquare("a1").Offset(0, -1); ok {
		t.Error("a1.Offset(0, -1) ok = true, want false")
	}
}

func TestAllSquares(t *testing.T) {
	all := AllSquares()
	if len(all) != 64 {
		t.Fatalf("len(AllSquares()) = %d, want 64", len(all))
	}
	if all[0].String() != "a8" || all[63].String() != "h1" {
		t.Errorf("AllSquares() runs %s..%s, want a8..h1", all[0], all[63])
	}
}

func TestMustSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSquare(\"z9\") did not panic")
		}
	}()
	MustSquare("z9")
}

func TestPieceModel(t *testing.T) {
	tests := []struct {
		piece  Piece
		points int
		letter byte
		name   string
	}{
		{W(Pawn), 1, 'P', "White Pawn"},
		{B(Knight), 3, 'n', "Black Knight"},
		{W(Bishop), 3, 'B', "White Bishop"},
		{B(Rook), 5, 'r', "Black Rook"},
		{W(Queen), 9, 'Q', "White Queen"},
		{B(King), 100, 'k', "Black King"},
		{Empty, 0, ' ', "Empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.Points(); got != tt.points {
				t.Errorf("Points() = %d, want %d", got, tt.points)
			}
			if got := tt.piece.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q, want %q", got, tt.letter)
			}
			if got := tt.piece.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if !tt.piece.IsEmpty() && PieceFromLetter(tt.letter) != tt.piece {
				t.Errorf("PieceFromLetter(%q) = %v, want %v", tt.letter, PieceFromLetter(tt.letter), tt.piece)
			}
		})
	}

	if NewPiece(White, None) != Empty {
		t.Error("NewPiece(White, None) is not Empty")
	}
	if NewPiece(NoColour, Queen) != Empty {
		t.Error("NewPiece(NoColour, Queen) is not Empty")
	}
	if PieceFromLetter('x') != Empty {
		t.Error("PieceFromLetter('x') is not Empty")
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("White and Black are not opposites")
	}
	if NoColour.Opposite() != NoColour {
		t.Error("NoColour.Opposite() != NoColour")
	}
}
