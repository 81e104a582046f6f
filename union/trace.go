// seehuhn.de/go/fontprep - prepare glyph outlines for font compilation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package union

// cellMask records which grid cells lie inside the filled region.
// Cell (x, y) covers [x, x+1] × [y, y+1] in grid coordinates.
type cellMask struct {
	width, height int
	cells         []bool
}

func newCellMask(width, height int) *cellMask {
	return &cellMask{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (m *cellMask) at(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x]
}

func (m *cellMask) set(x, y int) {
	m.cells[y*m.width+x] = true
}

// gridPoint is a cell corner.
type gridPoint struct {
	x, y int
}

func (p gridPoint) sub(q gridPoint) gridPoint {
	return gridPoint{p.x - q.x, p.y - q.y}
}

// boundaryEdge is a unit step along the border between an inside and an
// outside cell, directed so that the inside cell is on the left.
type boundaryEdge struct {
	from, to gridPoint
}

// traceLoops returns the boundary of the inside region as closed loops of
// cell corners. Outer boundaries run counter-clockwise and hole boundaries
// run clockwise (with y pointing up). Cells which only touch at a corner
// are kept apart.
func traceLoops(m *cellMask) [][]gridPoint {
	var edges []boundaryEdge
	for y := range m.height {
		for x := range m.width {
			if !m.at(x, y) {
				continue
			}
			if !m.at(x, y-1) {
				edges = append(edges, boundaryEdge{gridPoint{x, y}, gridPoint{x + 1, y}})
			}
			if !m.at(x+1, y) {
				edges = append(edges, boundaryEdge{gridPoint{x + 1, y}, gridPoint{x + 1, y + 1}})
			}
			if !m.at(x, y+1) {
				edges = append(edges, boundaryEdge{gridPoint{x + 1, y + 1}, gridPoint{x, y + 1}})
			}
			if !m.at(x-1, y) {
				edges = append(edges, boundaryEdge{gridPoint{x, y + 1}, gridPoint{x, y}})
			}
		}
	}

	outgoing := make(map[gridPoint][]int, len(edges))
	for i, e := range edges {
		outgoing[e.from] = append(outgoing[e.from], i)
	}

	used := make([]bool, len(edges))
	var loops [][]gridPoint
	for first := range edges {
		if used[first] {
			continue
		}

		var loop []gridPoint
		cur := first
		for {
			used[cur] = true
			e := edges[cur]
			loop = append(loop, e.from)

			next := -1
			bestRank := 4
			dir := e.to.sub(e.from)
			for _, cand := range outgoing[e.to] {
				if used[cand] && cand != first {
					continue
				}
				rank := turnRank(dir, edges[cand].to.sub(edges[cand].from))
				if rank < bestRank {
					next, bestRank = cand, rank
				}
			}
			if next < 0 || next == first {
				break
			}
			cur = next
		}
		loops = append(loops, loop)
	}
	return loops
}

// turnRank orders the possible continuations at a corner: left turns
// first, then straight on, then right turns.
func turnRank(in, out gridPoint) int {
	switch out {
	case gridPoint{-in.y, in.x}:
		return 0
	case in:
		return 1
	case gridPoint{in.y, -in.x}:
		return 2
	default:
		return 3
	}
}

// removeCollinear drops the corners of a closed loop where the direction
// does not change.
func removeCollinear(loop []gridPoint) []gridPoint {
	n := len(loop)
	if n < 3 {
		return loop
	}
	res := make([]gridPoint, 0, n)
	for i, p := range loop {
		prev := loop[(i+n-1)%n]
		next := loop[(i+1)%n]
		a := p.sub(prev)
		b := next.sub(p)
		if a.x*b.y-a.y*b.x == 0 && a.x*b.x+a.y*b.y > 0 {
			continue
		}
		res = append(res, p)
	}
	return res
}
