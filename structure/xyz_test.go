package structure

import (
	"os"
	"path/filepath"
	"testing"
)

func writeXYZ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xyz")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadXYZSingleFrame(t *testing.T) {
	path := writeXYZ(t, `2
Lattice="2 0 0 0 2 0 0 0 2"
Fe 0.0 0.0 0.0
Cu 1.0 1.0 1.0
`)
	traj, err := ReadXYZ(path)
	if err != nil {
		t.Fatal(err)
	}
	if traj.Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", traj.Frames())
	}
	snap, err := traj.Frame(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Atoms) != 2 {
		t.Fatalf("got %d atoms, want 2", len(snap.Atoms))
	}
	if snap.Atoms[0].Species != "Fe" || snap.Atoms[1].Species != "Cu" {
		t.Errorf("species = %q, %q", snap.Atoms[0].Species, snap.Atoms[1].Species)
	}
	if snap.Atoms[1].Position != [3]float64{1, 1, 1} {
		t.Errorf("position = %v", snap.Atoms[1].Position)
	}
	if snap.Cell != Diagonal(2, 2, 2) {
		t.Errorf("cell = %v", snap.Cell)
	}
}

func TestReadXYZMultiFrame(t *testing.T) {
	path := writeXYZ(t, `1
frame 0
H 0 0 0
1
frame 1
H 0 0 1
`)
	traj, err := ReadXYZ(path)
	if err != nil {
		t.Fatal(err)
	}
	if traj.Frames() != 2 {
		t.Fatalf("Frames() = %d, want 2", traj.Frames())
	}
	second, err := traj.Frame(1)
	if err != nil {
		t.Fatal(err)
	}
	if second.Atoms[0].Position[2] != 1 {
		t.Errorf("frame 1 z = %g, want 1", second.Atoms[0].Position[2])
	}
	if !second.Cell.IsZero() {
		t.Errorf("frame without Lattice entry should have zero cell, got %v", second.Cell)
	}
}

func TestReadXYZErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"bad count", "two\ncomment\n"},
		{"truncated frame", "3\ncomment\nH 0 0 0\n"},
		{"short atom line", "1\ncomment\nH 0 0\n"},
		{"bad coordinate", "1\ncomment\nH a b c\n"},
		{"bad lattice", "1\nLattice=\"1 2 3\"\nH 0 0 0\n"},
	}
	for _, tt := range tests {
		path := writeXYZ(t, tt.content)
		if _, err := ReadXYZ(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestSliceTrajectoryBounds(t *testing.T) {
	traj := SliceTrajectory{{}}
	if _, err := traj.Frame(1); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := traj.Frame(-1); err == nil {
		t.Error("expected out of range error")
	}
}
