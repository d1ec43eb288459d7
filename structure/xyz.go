package structure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadXYZ reads a (possibly multi-frame) XYZ file. Each frame is an atom
// count line, a comment line and one "Species x y z" line per atom. When the
// comment line carries an extended-XYZ Lattice="..." entry it is used as the
// frame's cell; otherwise the cell is left zero and the caller has to supply
// geometry.
func ReadXYZ(path string) (SliceTrajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("structure: open xyz: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	var traj SliceTrajectory
	line := 0
	for {
		header, ok := nextLine(sc, &line)
		if !ok {
			break
		}
		if strings.TrimSpace(header) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(header))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("structure: %s:%d: bad atom count %q", path, line, strings.TrimSpace(header))
		}

		comment, ok := nextLine(sc, &line)
		if !ok {
			return nil, fmt.Errorf("structure: %s: truncated frame header at line %d", path, line)
		}
		cell, err := parseLatticeComment(comment)
		if err != nil {
			return nil, fmt.Errorf("structure: %s:%d: %w", path, line, err)
		}

		snap := &Snapshot{Atoms: make([]Atom, 0, n), Cell: cell}
		for i := 0; i < n; i++ {
			raw, ok := nextLine(sc, &line)
			if !ok {
				return nil, fmt.Errorf("structure: %s: frame %d truncated after %d of %d atoms", path, len(traj), i, n)
			}
			fields := strings.Fields(raw)
			if len(fields) < 4 {
				return nil, fmt.Errorf("structure: %s:%d: expected \"species x y z\", got %q", path, line, raw)
			}
			var pos [3]float64
			for j := 0; j < 3; j++ {
				v, err := strconv.ParseFloat(fields[j+1], 64)
				if err != nil {
					return nil, fmt.Errorf("structure: %s:%d: bad coordinate %q: %w", path, line, fields[j+1], err)
				}
				pos[j] = v
			}
			snap.Atoms = append(snap.Atoms, Atom{Position: pos, Species: fields[0]})
		}
		traj = append(traj, snap)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("structure: read xyz: %w", err)
	}
	if len(traj) == 0 {
		return nil, fmt.Errorf("structure: %s: no frames found", path)
	}
	return traj, nil
}

func nextLine(sc *bufio.Scanner, line *int) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	*line++
	return sc.Text(), true
}

// parseLatticeComment extracts an extended-XYZ Lattice="..." entry from a
// frame comment line. Nine numbers, row-major.
func parseLatticeComment(comment string) (Lattice, error) {
	var cell Lattice
	idx := strings.Index(comment, `Lattice="`)
	if idx < 0 {
		return cell, nil
	}
	rest := comment[idx+len(`Lattice="`):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return cell, fmt.Errorf("unterminated Lattice entry")
	}
	fields := strings.Fields(rest[:end])
	if len(fields) != 9 {
		return cell, fmt.Errorf("Lattice entry has %d values, want 9", len(fields))
	}
	for i, fv := range fields {
		v, err := strconv.ParseFloat(fv, 64)
		if err != nil {
			return cell, fmt.Errorf("bad Lattice value %q: %w", fv, err)
		}
		cell[i/3][i%3] = v
	}
	return cell, nil
}
