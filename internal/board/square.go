// Package board implements chess board representation using bitboards.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
// Values outside that range only come from NoSquare; the constructors
// below refuse to build them.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// files holds the algebraic file letters indexed by file number.
const files = "abcdefgh"

// NewSquare returns the square with the given index.
// ok is false when index is not in [0, 63].
func NewSquare(index int) (sq Square, ok bool) {
	if index < 0 || index >= int(NoSquare) {
		return NoSquare, false
	}
	return Square(index), true
}

// SquareFromCoords returns the square on the given file (0=a) and rank (0=1).
// ok is false when either coordinate is not in [0, 7].
func SquareFromCoords(file, rank int) (sq Square, ok bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

// Index returns the 0-63 index of the square.
func (sq Square) Index() int {
	return int(sq)
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Name returns the algebraic notation for the square (e.g., "e4").
func (sq Square) Name() string {
	return fmt.Sprintf("%c%d", files[sq.File()], sq.Rank()+1)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.Name()
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	sq, ok := SquareFromCoords(int(s[0])-'a', int(s[1])-'1')
	if !ok {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}
