package structure

import "gonum.org/v1/gonum/floats"

// Lattice is a 3x3 cell matrix of row vectors defining the periodic box
// geometry of a snapshot.
type Lattice [3][3]float64

// Identity returns the identity lattice.
func Identity() Lattice {
	return Lattice{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diagonal returns an orthorhombic lattice with the given edge lengths.
func Diagonal(a, b, c float64) Lattice {
	return Lattice{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Lengths returns the Euclidean norm of each row vector.
func (l Lattice) Lengths() [3]float64 {
	var out [3]float64
	for i := range l {
		out[i] = floats.Norm(l[i][:], 2)
	}
	return out
}

// Normalized returns the lattice with each row vector scaled to unit norm.
// Zero rows pass through unchanged.
func (l Lattice) Normalized() Lattice {
	out := l
	for i := range out {
		n := floats.Norm(out[i][:], 2)
		if n == 0 {
			continue
		}
		floats.Scale(1/n, out[i][:])
	}
	return out
}

// IsZero reports whether every component of the lattice is zero.
func (l Lattice) IsZero() bool {
	for i := range l {
		for j := range l[i] {
			if l[i][j] != 0 {
				return false
			}
		}
	}
	return true
}
