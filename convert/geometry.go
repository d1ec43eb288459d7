package convert

import "github.com/electrolens/electrolens/structure"

// geometry derives the two geometry blocks from a cell matrix:
// systemDimension holds the Euclidean length of each row vector,
// systemLatticeVectors the row-normalized matrix.
func geometry(cell structure.Lattice) (*Vec3, *Mat3) {
	lengths := cell.Lengths()
	dim := &Vec3{X: lengths[0], Y: lengths[1], Z: lengths[2]}
	n := cell.Normalized()
	vec := &Mat3{
		U11: n[0][0], U12: n[0][1], U13: n[0][2],
		U21: n[1][0], U22: n[1][1], U23: n[1][2],
		U31: n[2][0], U32: n[2][1], U33: n[2][2],
	}
	return dim, vec
}
