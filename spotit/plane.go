package spotit

import "fmt"

// plane holds the affine part of a projective plane of order n: an n×n
// grid of symbols plus the n+1 symbols at infinity, one per parallel
// class. Both are drawn from the front of the alphabet with no overlap
// and no gaps, so the same order always yields the same plane.
type plane struct {
	order    int
	grid     [][]Symbol // grid[row][col]
	infinity []Symbol   // one per slope, in slope order
}

// newPlane partitions the first n²+n+1 alphabet symbols into the grid
// (row-major) and the symbols at infinity. It fails before consuming
// any symbol if the alphabet is too small.
func newPlane(order int) (*plane, error) {
	// The first clause keeps the square from overflowing for absurd
	// orders; the alphabet caps usable orders far below that anyway.
	if order > AlphabetSize || order*order+order+1 > AlphabetSize {
		return nil, fmt.Errorf("%w: order %d needs more than the %d available symbols",
			ErrAlphabetTooSmall, order, AlphabetSize)
	}

	p := &plane{
		order:    order,
		grid:     make([][]Symbol, order),
		infinity: make([]Symbol, 0, order+1),
	}

	next := 0
	for row := 0; row < order; row++ {
		p.grid[row] = make([]Symbol, 0, order)
		for col := 0; col < order; col++ {
			p.grid[row] = append(p.grid[row], SymbolAt(next))
			next++
		}
	}
	for i := 0; i <= order; i++ {
		p.infinity = append(p.infinity, SymbolAt(next))
		next++
	}
	return p, nil
}

// slope identifies one parallel class of lines in the affine plane:
// either the vertical "infinite" direction or an exact rational p/q.
// Rationals are kept as integer pairs so the modular line equation
// never touches floating point.
type slope struct {
	num, den int
	infinite bool
}

func infiniteSlope() slope { return slope{infinite: true} }

func finiteSlope(num, den int) slope { return slope{num: num, den: den} }

// String renders the slope for logs and test failures.
func (s slope) String() string {
	if s.infinite {
		return "inf"
	}
	return fmt.Sprintf("%d/%d", s.num, s.den)
}

// coefficient reduces the slope to a single multiplier modulo the
// prime order: p·q⁻¹ mod n. Must not be called on the infinite slope.
func (s slope) coefficient(order int) int {
	if s.infinite {
		panic("spotit: infinite slope has no finite coefficient")
	}
	if s.num == 0 {
		return 0
	}
	return s.num % order * invMod(s.den, order) % order
}

// slopesFor enumerates the order+1 direction classes of the affine
// plane: the infinite (vertical) direction first, then slope 0 and the
// reciprocals 1/1, 1/2, …, 1/(n-1). For prime n the reciprocals cover
// every nonzero residue exactly once, so together with 0 this is one
// representative per direction class.
func slopesFor(order int) []slope {
	slopes := make([]slope, 0, order+1)
	slopes = append(slopes, infiniteSlope())
	slopes = append(slopes, finiteSlope(0, 1))
	for den := 1; den < order; den++ {
		slopes = append(slopes, finiteSlope(1, den))
	}
	return slopes
}

// invMod returns the multiplicative inverse of a modulo the prime n.
// Orders are tiny (bounded by the alphabet), so a direct scan beats
// carrying an extended-Euclid implementation around.
func invMod(a, n int) int {
	a %= n
	for t := 1; t < n; t++ {
		if a*t%n == 1 {
			return t
		}
	}
	panic("spotit: no modular inverse, order not prime")
}
