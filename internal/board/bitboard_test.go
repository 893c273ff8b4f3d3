package board

import (
	"strings"
	"testing"
)

func TestBitboardEmpty(t *testing.T) {
	bb := Empty()
	if bb.PopCount() != 0 || !bb.IsEmpty() {
		t.Fatalf("Empty() = %#x, want 0", bb.Uint64())
	}
	if sq, ok := bb.LSB(); ok {
		t.Errorf("Empty().LSB() = %v, want absent", sq)
	}
}

func TestBitboardFromSquare(t *testing.T) {
	for i := 0; i < 64; i++ {
		sq, _ := NewSquare(i)
		bb := SquareBB(sq)
		if bb.PopCount() != 1 {
			t.Errorf("SquareBB(%v).PopCount() = %d", sq, bb.PopCount())
		}
		if bb.Uint64() != 1<<uint(i) {
			t.Errorf("SquareBB(%v) = %#x", sq, bb.Uint64())
		}
		if lsb, ok := bb.LSB(); !ok || lsb != sq {
			t.Errorf("SquareBB(%v).LSB() = %v, %v", sq, lsb, ok)
		}
	}

	if !SquareBB(NoSquare).IsEmpty() {
		t.Error("SquareBB(NoSquare) should be empty")
	}
}

func TestBitboardSetIdempotent(t *testing.T) {
	var bb Bitboard
	bb.Set(E4)
	bb.Set(E4)
	if bb.PopCount() != 1 || !bb.Has(E4) {
		t.Fatalf("after two Set(E4): %#x", bb.Uint64())
	}

	bb.Set(D3)
	if bb.PopCount() != 2 || !bb.Has(D3) {
		t.Fatalf("after Set(D3): %#x", bb.Uint64())
	}

	bb.Clear(E4)
	if bb.Has(E4) || bb.PopCount() != 1 {
		t.Fatalf("after Clear(E4): %#x", bb.Uint64())
	}
}

func TestBitboardSetAlgebra(t *testing.T) {
	a := SquareBB(A1).Union(SquareBB(B2))
	b := SquareBB(B2).Union(SquareBB(C3))

	if got := a.Union(b).Squares(); len(got) != 3 {
		t.Errorf("Union = %v", got)
	}
	if got := a.Intersect(b); got != SquareBB(B2) {
		t.Errorf("Intersect = %v", got.Squares())
	}
	if got := a.Xor(b); got != SquareBB(A1).Union(SquareBB(C3)) {
		t.Errorf("Xor = %v", got.Squares())
	}
	if got := a.Without(b); got != SquareBB(A1) {
		t.Errorf("Without = %v", got.Squares())
	}
	if got := a.Complement().PopCount(); got != 62 {
		t.Errorf("Complement().PopCount() = %d", got)
	}
}

func TestBitboardPopLSB(t *testing.T) {
	bb := SquareBB(A1).Union(SquareBB(H8))

	sq, ok := bb.PopLSB()
	if !ok || sq != A1 {
		t.Fatalf("PopLSB 1: got (%v, %t), want (a1, true)", sq, ok)
	}
	if bb != SquareBB(H8) {
		t.Fatalf("PopLSB 1: remaining %#x", bb.Uint64())
	}

	sq, ok = bb.PopLSB()
	if !ok || sq != H8 {
		t.Fatalf("PopLSB 2: got (%v, %t), want (h8, true)", sq, ok)
	}

	if _, ok = bb.PopLSB(); ok {
		t.Fatal("PopLSB 3: expected absent result on empty bitboard")
	}
	if !bb.IsEmpty() {
		t.Fatalf("PopLSB on empty changed the bitboard: %#x", bb.Uint64())
	}
}

func TestBitboardSquares(t *testing.T) {
	bb := SquareBB(H8).Union(SquareBB(B2)).Union(SquareBB(A1))
	want := []Square{A1, B2, H8}
	got := bb.Squares()

	if len(got) != len(want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Squares() = %v, want %v", got, want)
		}
	}

	// ForEach works on a copy
	if bb.PopCount() != 3 {
		t.Errorf("Squares() consumed the bitboard")
	}
	if len(Empty().Squares()) != 0 {
		t.Error("Empty().Squares() should be empty")
	}
}

func TestBitboardMasks(t *testing.T) {
	for i := 0; i < 8; i++ {
		if FileMask[i].PopCount() != 8 || RankMask[i].PopCount() != 8 {
			t.Errorf("mask %d has wrong size", i)
		}
		sq, _ := SquareFromCoords(i, i)
		if !FileMask[i].Has(sq) || !RankMask[i].Has(sq) {
			t.Errorf("masks %d miss %v", i, sq)
		}
	}
}

func TestBitboardPretty(t *testing.T) {
	var bb Bitboard
	bb.Set(E4)
	bb.Set(D3)

	lines := strings.Split(strings.TrimRight(bb.Pretty(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Pretty() has %d lines, want 9:\n%s", len(lines), bb.Pretty())
	}
	if lines[0] != "8 . . . . . . . ." {
		t.Errorf("rank 8 row = %q", lines[0])
	}
	if lines[4] != "4 . . . . X . . ." {
		t.Errorf("rank 4 row = %q", lines[4])
	}
	if lines[5] != "3 . . . X . . . ." {
		t.Errorf("rank 3 row = %q", lines[5])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("file row = %q", lines[8])
	}
}

func BenchmarkBitboardSquares(b *testing.B) {
	bb := StandardLayout.Board().CombinedOccupancy()
	for i := 0; i < b.N; i++ {
		bb.Squares()
	}
}
