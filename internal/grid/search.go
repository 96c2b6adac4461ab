package grid

import "fmt"

// Path is an ordered sequence of 4-adjacent positions from start to finish.
type Path []Position

// Len returns the number of steps in the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// neighborOffsets is the fixed expansion order: up, down, left, right.
// Among equally short paths the search returns the one this order finds
// first.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// SearchStats describes the work done by one search.
type SearchStats struct {
	Visited int // cells discovered, start included
}

// FindPath returns a shortest 4-directional path from start to finish on m,
// or false when finish cannot be reached. start and finish must be in bounds
// and unblocked.
func FindPath(m BarrierMatrix, start, finish Position) (Path, bool) {
	path, _, ok := FindPathStats(m, start, finish)
	return path, ok
}

// FindPathStats is FindPath that also reports how many cells were discovered.
func FindPathStats(m BarrierMatrix, start, finish Position) (Path, SearchStats, bool) {
	mustInBounds(start, m.size)
	mustInBounds(finish, m.size)
	if m.Blocked(start) || m.Blocked(finish) {
		panic(fmt.Sprintf("grid: search endpoint blocked (start %s, finish %s)", start, finish))
	}

	if start == finish {
		return Path{start}, SearchStats{Visited: 1}, true
	}

	n := m.size * m.size
	index := func(p Position) int { return p.Y*m.size + p.X }

	visited := make([]bool, n)
	parent := make([]Position, n)
	queue := make([]Position, 0, n)

	visited[index(start)] = true
	queue = append(queue, start)
	stats := SearchStats{Visited: 1}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, off := range neighborOffsets {
			next := cur.Add(off[0], off[1])
			if m.Blocked(next) || visited[index(next)] {
				continue
			}
			visited[index(next)] = true
			parent[index(next)] = cur
			stats.Visited++
			if next == finish {
				return reconstruct(parent, index, start, finish), stats, true
			}
			queue = append(queue, next)
		}
	}

	return nil, stats, false
}

// reconstruct follows parent links from finish back to start and reverses
// them into start-to-finish order.
func reconstruct(parent []Position, index func(Position) int, start, finish Position) Path {
	var path Path
	for p := finish; p != start; p = parent[index(p)] {
		path = append(path, p)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
