// Package structure holds the input-side data model of the configuration
// producer: atoms, structure snapshots, trajectories and lattice geometry.
//
// The types here form the boundary with whatever scientific library produced
// the data. Providers only need to hand over atoms with Cartesian positions,
// species labels and a 3x3 cell matrix of row vectors.
package structure

import "fmt"

// Atom is one atom record: a Cartesian position and a species label.
type Atom struct {
	Position [3]float64
	Species  string
}

// Snapshot is one static set of atoms plus the periodic cell they live in.
// Snapshots are treated as immutable once built.
type Snapshot struct {
	Atoms []Atom
	Cell  Lattice
}

// Trajectory is an ordered, indexable sequence of snapshots (frame 0..N-1).
// All frames are assumed to share frame 0's lattice unless the provider says
// otherwise.
type Trajectory interface {
	// Frames returns the number of frames.
	Frames() int

	// Frame returns the snapshot at index i.
	Frame(i int) (*Snapshot, error)
}

// SliceTrajectory is an in-memory Trajectory backed by a slice of snapshots.
type SliceTrajectory []*Snapshot

func (t SliceTrajectory) Frames() int { return len(t) }

func (t SliceTrajectory) Frame(i int) (*Snapshot, error) {
	if i < 0 || i >= len(t) {
		return nil, fmt.Errorf("structure: frame %d out of range [0,%d)", i, len(t))
	}
	return t[i], nil
}
