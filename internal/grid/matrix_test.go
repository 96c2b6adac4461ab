package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// matrixOf builds a matrix from a list of blocked positions. Positions
// outside the grid are ignored.
func matrixOf(size int, barriers ...Position) BarrierMatrix {
	s := NewStore(size)
	for _, p := range barriers {
		if InBounds(p, size) {
			s.Mark(p, RoleBarrier)
		}
	}
	return BuildMatrix(s)
}

func blockedCount(m BarrierMatrix) int {
	n := 0
	for x := 0; x < m.Size(); x++ {
		for y := 0; y < m.Size(); y++ {
			if m.Blocked(P(x, y)) {
				n++
			}
		}
	}
	return n
}

func TestBuildMatrixMatchesLookup(t *testing.T) {
	const size = 8
	rng := rand.New(rand.NewSource(3))
	s := NewStore(size)
	for i := 0; i < 40; i++ {
		s.Mark(P(rng.Intn(size), rng.Intn(size)), []Role{RoleStart, RoleFinish, RoleBarrier}[rng.Intn(3)])
	}

	m := BuildMatrix(s)
	assert.Equal(t, size, m.Size())
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			p := P(x, y)
			assert.Equal(t, s.Lookup(p) == RoleBarrier, m.Blocked(p), "cell %s", p)
		}
	}
	assert.Equal(t, s.Count(RoleBarrier), blockedCount(m))
}

func TestBuildMatrixIgnoresNonBarrierRoles(t *testing.T) {
	e := NewEngine(3)
	e.Mark(P(0, 0), RoleStart)
	e.Mark(P(2, 2), RoleFinish)
	res := e.RequestPath()
	assert.True(t, res.Found)

	m := BuildMatrix(e.store)
	assert.Equal(t, 0, blockedCount(m))
}

func TestMatrixIsIndependentOfLaterEdits(t *testing.T) {
	s := NewStore(3)
	s.Mark(P(1, 1), RoleBarrier)
	m := BuildMatrix(s)

	s.Unmark(P(1, 1))
	assert.True(t, m.Blocked(P(1, 1)))
}

func TestMatrixOutOfBoundsIsBlocked(t *testing.T) {
	m := matrixOf(2)
	assert.True(t, m.Blocked(P(-1, 0)))
	assert.True(t, m.Blocked(P(0, 2)))
	assert.False(t, m.Blocked(P(1, 1)))
}
