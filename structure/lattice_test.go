package structure

import (
	"math"
	"testing"
)

func TestLatticeLengths(t *testing.T) {
	tests := []struct {
		name string
		l    Lattice
		want [3]float64
	}{
		{"identity", Identity(), [3]float64{1, 1, 1}},
		{"scaled identity", Diagonal(2, 2, 2), [3]float64{2, 2, 2}},
		{"orthorhombic", Diagonal(1, 2, 3), [3]float64{1, 2, 3}},
		{"triclinic row", Lattice{{3, 4, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{5, 1, 1}},
	}
	for _, tt := range tests {
		got := tt.l.Lengths()
		if got != tt.want {
			t.Errorf("%s: Lengths() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLatticeNormalized(t *testing.T) {
	l := Lattice{{3, 4, 0}, {0, 2, 0}, {0, 0, 5}}
	n := l.Normalized()

	for i := range n {
		norm := math.Hypot(math.Hypot(n[i][0], n[i][1]), n[i][2])
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("row %d norm = %g, want 1", i, norm)
		}
	}
	if n[0][0] != 0.6 || n[0][1] != 0.8 {
		t.Errorf("row 0 = %v, want {0.6, 0.8, 0}", n[0])
	}

	// The receiver is not mutated.
	if l[0][0] != 3 {
		t.Errorf("Normalized mutated the receiver: %v", l)
	}
}

func TestLatticeNormalizedZeroRow(t *testing.T) {
	l := Lattice{{2, 0, 0}, {0, 0, 0}, {0, 0, 2}}
	n := l.Normalized()
	if n[1] != [3]float64{0, 0, 0} {
		t.Errorf("zero row changed: %v", n[1])
	}
	if n[0][0] != 1 || n[2][2] != 1 {
		t.Errorf("nonzero rows not normalized: %v", n)
	}
}

func TestLatticeIsZero(t *testing.T) {
	if !(Lattice{}).IsZero() {
		t.Error("zero lattice not reported as zero")
	}
	if Identity().IsZero() {
		t.Error("identity reported as zero")
	}
}
