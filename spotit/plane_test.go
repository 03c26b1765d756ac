package spotit

import (
	"errors"
	"testing"
)

func TestNewPlaneOrderThree(t *testing.T) {
	p, err := newPlane(3)
	if err != nil {
		t.Fatalf("newPlane(3) error = %v", err)
	}

	// Grid fills row-major from the front of the alphabet.
	next := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if p.grid[row][col] != SymbolAt(next) {
				t.Errorf("grid[%d][%d] = %v, want %v", row, col, p.grid[row][col], SymbolAt(next))
			}
			next++
		}
	}

	// The symbols at infinity follow immediately, in draw order.
	if len(p.infinity) != 4 {
		t.Fatalf("len(infinity) = %d, want 4", len(p.infinity))
	}
	for i, s := range p.infinity {
		if s != SymbolAt(9+i) {
			t.Errorf("infinity[%d] = %v, want %v", i, s, SymbolAt(9+i))
		}
	}
}

func TestNewPlaneNoSymbolReuse(t *testing.T) {
	p, err := newPlane(5)
	if err != nil {
		t.Fatalf("newPlane(5) error = %v", err)
	}

	used := make(map[Symbol]bool)
	for _, row := range p.grid {
		for _, s := range row {
			if used[s] {
				t.Fatalf("symbol %v drawn twice", s)
			}
			used[s] = true
		}
	}
	for _, s := range p.infinity {
		if used[s] {
			t.Fatalf("infinity symbol %v also appears in the grid", s)
		}
		used[s] = true
	}
	if len(used) != 5*5+5+1 {
		t.Errorf("plane consumed %d symbols, want %d", len(used), 5*5+5+1)
	}
}

func TestNewPlaneAlphabetTooSmall(t *testing.T) {
	// 11²+11+1 = 133 exceeds the 93-symbol alphabet.
	if _, err := newPlane(11); !errors.Is(err, ErrAlphabetTooSmall) {
		t.Errorf("newPlane(11) error = %v, want ErrAlphabetTooSmall", err)
	}
	// Absurdly large orders must fail the same way, not overflow.
	if _, err := newPlane(1 << 40); !errors.Is(err, ErrAlphabetTooSmall) {
		t.Errorf("newPlane(1<<40) error = %v, want ErrAlphabetTooSmall", err)
	}
}

func TestSlopesFor(t *testing.T) {
	slopes := slopesFor(5)
	if len(slopes) != 6 {
		t.Fatalf("slopesFor(5) returned %d slopes, want 6", len(slopes))
	}
	if !slopes[0].infinite {
		t.Error("first slope must be the infinite direction")
	}
	if slopes[1].num != 0 {
		t.Errorf("second slope = %v, want 0", slopes[1])
	}
	for i := 2; i < len(slopes); i++ {
		if slopes[i].num != 1 || slopes[i].den != i-1 {
			t.Errorf("slope %d = %v, want 1/%d", i, slopes[i], i-1)
		}
	}
}

func TestSlopeCoefficientsCoverAllResidues(t *testing.T) {
	// One representative per direction class: the finite slopes must
	// reduce to every residue mod n exactly once.
	for _, n := range []int{2, 3, 5, 7} {
		seen := make(map[int]bool)
		for _, s := range slopesFor(n) {
			if s.infinite {
				continue
			}
			m := s.coefficient(n)
			if m < 0 || m >= n {
				t.Fatalf("n=%d slope %v coefficient %d out of range", n, s, m)
			}
			if seen[m] {
				t.Fatalf("n=%d slope %v duplicates coefficient %d", n, s, m)
			}
			seen[m] = true
		}
		if len(seen) != n {
			t.Errorf("n=%d covered %d residues, want %d", n, len(seen), n)
		}
	}
}

func TestInvMod(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{1, 2, 1},
		{1, 3, 1},
		{2, 3, 2},
		{2, 5, 3},
		{3, 5, 2},
		{4, 5, 4},
		{3, 7, 5},
		{6, 7, 6},
	}
	for _, tt := range tests {
		if got := invMod(tt.a, tt.n); got != tt.want {
			t.Errorf("invMod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}
