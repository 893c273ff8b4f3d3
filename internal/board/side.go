package board

// Side holds one player's pieces, one bitboard per piece type.
//
// The six bitboards must be pairwise disjoint. The type does not enforce
// this; code that moves pieces has to keep it, and Board.Validate checks it.
type Side struct {
	Pawns   Bitboard
	Knights Bitboard
	Bishops Bitboard
	Rooks   Bitboard
	Queens  Bitboard
	King    Bitboard
}

// Combined returns every square occupied by this side. It is recomputed
// on each call.
func (s Side) Combined() Bitboard {
	return s.Pawns.Union(s.Knights).
		Union(s.Bishops).
		Union(s.Rooks).
		Union(s.Queens).
		Union(s.King)
}

// Pieces returns the bitboard for the given piece type.
// NoPieceType gives the empty set.
func (s Side) Pieces(pt PieceType) Bitboard {
	if bb := s.bitboard(pt); bb != nil {
		return *bb
	}
	return Bitboard{}
}

func (s *Side) bitboard(pt PieceType) *Bitboard {
	switch pt {
	case Pawn:
		return &s.Pawns
	case Knight:
		return &s.Knights
	case Bishop:
		return &s.Bishops
	case Rook:
		return &s.Rooks
	case Queen:
		return &s.Queens
	case King:
		return &s.King
	default:
		return nil
	}
}
