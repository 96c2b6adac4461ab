package grid

// BarrierMatrix is a dense view of which cells block traversal.
// It is derived from a Store and never edited afterwards; build a new one
// for every search.
type BarrierMatrix struct {
	size    int
	blocked [][]bool // [x][y]
}

// BuildMatrix projects the store into a dense barrier matrix.
// A cell is blocked iff the store holds a barrier there.
func BuildMatrix(s *Store) BarrierMatrix {
	size := s.Size()
	blocked := make([][]bool, size)
	for x := 0; x < size; x++ {
		blocked[x] = make([]bool, size)
	}
	for _, c := range s.cells {
		if c.Role == RoleBarrier {
			blocked[c.Pos.X][c.Pos.Y] = true
		}
	}
	return BarrierMatrix{size: size, blocked: blocked}
}

// Size returns the grid side length.
func (m BarrierMatrix) Size() int {
	return m.size
}

// Blocked reports whether p is a barrier. Out-of-grid positions count as
// blocked so neighbour checks need no separate bounds test.
func (m BarrierMatrix) Blocked(p Position) bool {
	if !InBounds(p, m.size) {
		return true
	}
	return m.blocked[p.X][p.Y]
}
