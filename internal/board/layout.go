package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLayout is returned when a placement string cannot be parsed.
var ErrInvalidLayout = errors.New("invalid layout")

// StartPlacement is the FEN piece placement of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Layout is a fixed table of piece bitboards, indexed [Color][PieceType].
// It is configuration data: Board values are built from it, and a Layout
// never changes once created.
type Layout struct {
	Name   string
	Pieces [2][6]Bitboard
}

// StandardLayout is the standard chess starting position. White occupies
// ranks 1 and 2, Black ranks 7 and 8.
var StandardLayout = Layout{
	Name: "standard",
	Pieces: [2][6]Bitboard{
		White: {
			Pawn:   NewBitboard(0x0000_0000_0000_FF00),
			Knight: NewBitboard(0x0000_0000_0000_0042),
			Bishop: NewBitboard(0x0000_0000_0000_0024),
			Rook:   NewBitboard(0x0000_0000_0000_0081),
			Queen:  NewBitboard(0x0000_0000_0000_0008),
			King:   NewBitboard(0x0000_0000_0000_0010),
		},
		Black: {
			Pawn:   NewBitboard(0x00FF_0000_0000_0000),
			Knight: NewBitboard(0x4200_0000_0000_0000),
			Bishop: NewBitboard(0x2400_0000_0000_0000),
			Rook:   NewBitboard(0x8100_0000_0000_0000),
			Queen:  NewBitboard(0x0800_0000_0000_0000),
			King:   NewBitboard(0x1000_0000_0000_0000),
		},
	},
}

// Board builds a Board holding the layout's pieces.
func (l Layout) Board() Board {
	var b Board
	for _, c := range Colors {
		side := b.side(c)
		for _, pt := range PieceTypes {
			*side.bitboard(pt) = l.Pieces[c][pt]
		}
	}
	return b
}

// ParseLayout parses the piece placement field of a FEN record
// (e.g. StartPlacement) into a named Layout. Only the placement is read;
// a full FEN record is rejected.
func ParseLayout(name, placement string) (Layout, error) {
	l := Layout{Name: name}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return Layout{}, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidLayout, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // placement starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return Layout{}, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidLayout, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return Layout{}, fmt.Errorf("%w: invalid piece character %q", ErrInvalidLayout, c)
			}
			sq, _ := SquareFromCoords(file, rank)
			l.Pieces[piece.Color()][piece.Type()].Set(sq)
			file++
		}

		if file != 8 {
			return Layout{}, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidLayout, rank+1, file)
		}
	}

	return l, nil
}

// Placement returns the layout as a FEN piece placement field.
func (l Layout) Placement() string {
	return l.Board().Placement()
}

// Placement returns the board's pieces as a FEN piece placement field.
func (b Board) Placement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(file, rank)
			p := b.PieceAt(sq)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
