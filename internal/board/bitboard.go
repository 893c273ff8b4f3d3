package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
//
// The word is wrapped so a Bitboard never mixes with unrelated uint64 values;
// use NewBitboard and Uint64 to cross that boundary explicitly.
// The zero value is the empty set.
type Bitboard struct {
	bits uint64
}

// File masks
var (
	FileA = NewBitboard(0x0101010101010101)
	FileB = NewBitboard(0x0202020202020202)
	FileC = NewBitboard(0x0404040404040404)
	FileD = NewBitboard(0x0808080808080808)
	FileE = NewBitboard(0x1010101010101010)
	FileF = NewBitboard(0x2020202020202020)
	FileG = NewBitboard(0x4040404040404040)
	FileH = NewBitboard(0x8080808080808080)
)

// Rank masks
var (
	Rank1 = NewBitboard(0x00000000000000FF)
	Rank2 = NewBitboard(0x000000000000FF00)
	Rank3 = NewBitboard(0x0000000000FF0000)
	Rank4 = NewBitboard(0x00000000FF000000)
	Rank5 = NewBitboard(0x000000FF00000000)
	Rank6 = NewBitboard(0x0000FF0000000000)
	Rank7 = NewBitboard(0x00FF000000000000)
	Rank8 = NewBitboard(0xFF00000000000000)
)

// FileMask returns the file mask for a given file (0-7).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask returns the rank mask for a given rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// Empty returns the bitboard with no squares set.
func Empty() Bitboard {
	return Bitboard{}
}

// NewBitboard wraps a raw 64-bit word.
func NewBitboard(v uint64) Bitboard {
	return Bitboard{bits: v}
}

// SquareBB returns a bitboard with only the given square set.
// NoSquare and other invalid squares give the empty set.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Bitboard{}
	}
	return Bitboard{bits: 1 << sq}
}

// Uint64 returns the raw 64-bit word.
func (b Bitboard) Uint64() uint64 {
	return b.bits
}

// Set sets the bit at the given square. Setting an occupied square is a no-op.
func (b *Bitboard) Set(sq Square) {
	b.bits |= SquareBB(sq).bits
}

// Clear clears the bit at the given square.
func (b *Bitboard) Clear(sq Square) {
	b.bits &^= SquareBB(sq).bits
}

// Has returns true if the bit at the given square is set.
func (b Bitboard) Has(sq Square) bool {
	return b.bits&SquareBB(sq).bits != 0
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b.bits == 0
}

// Union returns the squares set in either bitboard.
func (b Bitboard) Union(o Bitboard) Bitboard {
	return Bitboard{bits: b.bits | o.bits}
}

// Intersect returns the squares set in both bitboards.
func (b Bitboard) Intersect(o Bitboard) Bitboard {
	return Bitboard{bits: b.bits & o.bits}
}

// Xor returns the squares set in exactly one of the bitboards.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{bits: b.bits ^ o.bits}
}

// Without returns b with the squares of o removed.
func (b Bitboard) Without(o Bitboard) Bitboard {
	return Bitboard{bits: b.bits &^ o.bits}
}

// Complement returns every square not in b.
func (b Bitboard) Complement() Bitboard {
	return Bitboard{bits: ^b.bits}
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.bits)
}

// LSB returns the least significant bit (lowest square index).
// ok is false for the empty bitboard.
func (b Bitboard) LSB() (sq Square, ok bool) {
	if b.bits == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(b.bits)), true
}

// PopLSB removes and returns the least significant bit.
//
//	for sq, ok := bb.PopLSB(); ok; sq, ok = bb.PopLSB() {
//		...
//	}
func (b *Bitboard) PopLSB() (sq Square, ok bool) {
	sq, ok = b.LSB()
	b.bits &= b.bits - 1
	return sq, ok
}

// ForEach calls the function for each set square, lowest index first.
func (b Bitboard) ForEach(f func(Square)) {
	for sq, ok := b.PopLSB(); ok; sq, ok = b.PopLSB() {
		f(sq)
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	b.ForEach(func(sq Square) {
		squares = append(squares, sq)
	})
	return squares
}

// Pretty returns an 8x8 grid of the bitboard for debugging: rank 8 at the
// top, X for set squares, . for empty ones and a file label row last.
func (b Bitboard) Pretty() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(file, rank)
			if b.Has(sq) {
				sb.WriteString(" X")
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	return b.Pretty()
}
