// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Empty squares carry no colour
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Kind represents a chess piece type.
type Kind int

const (
	None Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// kindLetters are the English FEN/SAN letters, upper case.
var kindLetters = [NumKinds]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}

// kindPoints is the fixed material value of each kind.
var kindPoints = [NumKinds]int{0, 1, 3, 3, 5, 9, 100}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	if k >= 0 && k < NumKinds {
		return kindLetters[k]
	}
	return '?'
}

// Points returns the material value of the kind.
func (k Kind) Points() int {
	if k >= 0 && k < NumKinds {
		return kindPoints[k]
	}
	return 0
}

// KindFromLetter converts a FEN letter of either case to a kind.
// Unknown letters map to None.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return None
}

// Piece is a coloured piece as it sits on a square. The zero value is an
// empty square. A piece has no position of its own; its square is implied
// by its slot in the Board.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// NewPiece creates a coloured piece. A None kind always yields Empty.
func NewPiece(colour Colour, kind Kind) Piece {
	if kind == None || colour == NoColour {
		return Empty
	}
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the piece is the empty marker.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Points returns the material value of the piece.
func (p Piece) Points() int {
	return p.Kind.Points()
}

// Letter returns the FEN letter: upper case for White, lower case for Black
// and a space for an empty square.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter to a coloured piece; upper case is
// White. Unknown letters yield Empty.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if c >= 'a' && c <= 'z' {
		return NewPiece(Black, kind)
	}
	return NewPiece(White, kind)
}

// ColourOffset returns the row delta of a pawn advance: -1 for White, +1 for
// Black. Row 0 is rank 8.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRank returns the back rank of a colour.
func HomeRank(colour Colour) Rank {
	if colour == Black {
		return '8'
	}
	return '1'
}

// PawnRank returns the starting rank of a colour's pawns.
func PawnRank(colour Colour) Rank {
	if colour == Black {
		return '7'
	}
	return '2'
}
