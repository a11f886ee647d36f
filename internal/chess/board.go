package chess

// Orientation records which side is drawn at the bottom by presentation
// adapters. It has no effect on the rules.
type Orientation int

const (
	WhiteBottom Orientation = iota
	BlackBottom
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == BlackBottom {
		return "black"
	}
	return "white"
}

// Snapshot is a value copy of the board grid. Row 0 is rank 8 and column 0
// is file a. Snapshots compare with ==.
type Snapshot [BoardSize][BoardSize]Piece

// Get returns the piece at a square of the snapshot.
func (s Snapshot) Get(sq Square) Piece {
	row, col := sq.Index()
	return s[row][col]
}

// Board represents a chess board. It holds occupancy only; castling and
// en-passant bookkeeping live with the game that owns the board.
type Board struct {
	// Squares[row][col] with row 0 = rank 8 and col 0 = file a.
	Squares Snapshot

	// Which side presentation adapters draw at the bottom.
	Orientation Orientation
}

// backRank is the piece order of both home ranks from file a to file h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Initialize()
	return b
}

// Initialize sets up the standard chess starting position and resets the
// orientation to WhiteBottom.
func (b *Board) Initialize() {
	b.Squares = Snapshot{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
	b.Orientation = WhiteBottom
}

// Reset restores the standard starting position.
func (b *Board) Reset() {
	b.Initialize()
}

// Get returns the piece at the given square. Off-board squares read as
// Empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	row, col := sq.Index()
	return b.Squares[row][col]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	row, col := sq.Index()
	b.Squares[row][col] = piece
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// Move relocates the piece on from to to, overwriting whatever stood there.
func (b *Board) Move(from, to Square) {
	piece := b.Get(from)
	b.Clear(from)
	b.Set(to, piece)
}

// GetByIndex returns the piece at the given grid indices.
func (b *Board) GetByIndex(row, col int) Piece {
	return b.Squares[row][col]
}

// Snapshot returns a copy of the grid.
func (b *Board) Snapshot() Snapshot {
	return b.Squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Flip toggles the presentation orientation.
func (b *Board) Flip() {
	if b.Orientation == WhiteBottom {
		b.Orientation = BlackBottom
	} else {
		b.Orientation = WhiteBottom
	}
}

// Count returns how many squares hold exactly the given piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := range b.Squares {
		for col := range b.Squares[row] {
			if b.Squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// Material returns the summed point value of a colour's pieces.
func (b *Board) Material(colour Colour) int {
	total := 0
	for row := range b.Squares {
		for col := range b.Squares[row] {
			if p := b.Squares[row][col]; p.Colour == colour {
				total += p.Points()
			}
		}
	}
	return total
}
