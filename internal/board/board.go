package board

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrOverlap is wrapped by every violation Validate reports.
var ErrOverlap = errors.New("square claimed twice")

// Board is a chess board made of two Sides.
//
// Index 0 is a1 on White's back rank. White pieces print uppercase and
// Black pieces lowercase. No square may be claimed by both sides; like the
// per-side invariant, this is up to the code mutating the board and is
// checked by Validate.
type Board struct {
	White Side
	Black Side
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	return StandardLayout.Board()
}

// Side returns the pieces of the given color.
func (b Board) Side(c Color) Side {
	if s := b.side(c); s != nil {
		return *s
	}
	return Side{}
}

func (b *Board) side(c Color) *Side {
	switch c {
	case White:
		return &b.White
	case Black:
		return &b.Black
	default:
		return nil
	}
}

// CombinedOccupancy returns every occupied square, regardless of owner.
func (b Board) CombinedOccupancy() Bitboard {
	return b.White.Combined().Union(b.Black.Combined())
}

// PieceBitboard returns the bitboard of the given color and piece type.
func (b Board) PieceBitboard(c Color, pt PieceType) Bitboard {
	return b.Side(c).Pieces(pt)
}

// PieceAt returns the piece on the given square, or NoPiece if empty.
// White pawns, knights, bishops, rooks, queens and king are tried first,
// then Black in the same order, and the first match wins. Only a board
// that fails Validate can match more than once.
func (b Board) PieceAt(sq Square) Piece {
	for _, c := range Colors {
		side := b.Side(c)
		for _, pt := range PieceTypes {
			if side.Pieces(pt).Has(sq) {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// Print writes a bordered ASCII diagram of the board to w,
// rank 8 first, files a to h.
func (b Board) Print(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("  +------------------------+\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(file, rank)
			fmt.Fprintf(&sb, " %c ", b.PieceAt(sq).Char())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +------------------------+\n")
	sb.WriteString("    a  b  c  d  e  f  g  h\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the diagram written by Print.
func (b Board) String() string {
	var sb strings.Builder
	_ = b.Print(&sb)
	return sb.String()
}

// Validate checks that no square is claimed by two piece types of one side
// or by both sides. Every offending square is reported; the errors are
// joined and each wraps ErrOverlap.
func (b Board) Validate() error {
	var errs []error

	for _, c := range Colors {
		side := b.Side(c)
		var seen Bitboard
		for _, pt := range PieceTypes {
			bb := side.Pieces(pt)
			dup := bb.Intersect(seen)
			dup.ForEach(func(sq Square) {
				errs = append(errs, fmt.Errorf("%w: %s holds %s and %s",
					ErrOverlap, sq, b.claimant(c, sq, pt), NewPiece(pt, c)))
			})
			seen = seen.Union(bb)
		}
	}

	shared := b.White.Combined().Intersect(b.Black.Combined())
	shared.ForEach(func(sq Square) {
		errs = append(errs, fmt.Errorf("%w: %s holds %s and %s",
			ErrOverlap, sq, b.claimant(White, sq, NoPieceType), b.claimant(Black, sq, NoPieceType)))
	})

	return errors.Join(errs...)
}

// claimant returns the first piece of color c on sq whose type comes
// before limit in lookup order.
func (b Board) claimant(c Color, sq Square, limit PieceType) Piece {
	side := b.Side(c)
	for _, pt := range PieceTypes {
		if pt >= limit {
			break
		}
		if side.Pieces(pt).Has(sq) {
			return NewPiece(pt, c)
		}
	}
	return NoPiece
}
