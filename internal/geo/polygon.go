// Copyright (c) 2023, The AFC Engine Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package geo

import "math"

// Cell is one grid cell index in a polygon raster.
type Cell struct{ I, J int }

// RasterGrid is the result of rasterizing a polygon to a grid: every cell
// whose centre falls inside the polygon. Per Design Notes §9 this must be
// built with integer-grid scan conversion and explicit flood fill, not a
// point-in-polygon test per cell, since small deviations in the boundary
// algorithm change which cells count as inside.
type RasterGrid struct {
	MinI, MinJ, MaxI, MaxJ int
	Interior               map[Cell]bool
}

// RasterizePolygon converts a closed polygon (vertices in a local planar
// (x,y) coordinate system, same units as cellSize) into a RasterGrid.
//
// Algorithm (Design Notes §9): (a) Bresenham-style traversal of each edge
// marks boundary cells; (b) BFS from a cell outside the bounding box seeds
// the exterior; (c) the complement of boundary+exterior is interior.
func RasterizePolygon(vertices [][2]float64, cellSize float64) RasterGrid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vertices {
		minX = math.Min(minX, v[0])
		minY = math.Min(minY, v[1])
		maxX = math.Max(maxX, v[0])
		maxY = math.Max(maxY, v[1])
	}
	pad := 2.0 * cellSize
	minX -= pad
	minY -= pad
	maxX += pad
	maxY += pad

	toCell := func(x, y float64) Cell {
		return Cell{I: int(math.Floor((x - minX) / cellSize)), J: int(math.Floor((y - minY) / cellSize))}
	}
	maxI := int(math.Ceil((maxX - minX) / cellSize))
	maxJ := int(math.Ceil((maxY - minY) / cellSize))

	boundary := make(map[Cell]bool)
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		bresenhamLine(toCell(a[0], a[1]), toCell(b[0], b[1]), boundary)
	}

	// BFS exterior flood fill starting from the grid corner (0,0), which
	// lies in the padding outside the polygon's own bounding box by
	// construction.
	exterior := make(map[Cell]bool)
	queue := []Cell{{I: 0, J: 0}}
	exterior[Cell{0, 0}] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		neighbors := [4]Cell{
			{c.I - 1, c.J}, {c.I + 1, c.J}, {c.I, c.J - 1}, {c.I, c.J + 1},
		}
		for _, nb := range neighbors {
			if nb.I < 0 || nb.J < 0 || nb.I > maxI || nb.J > maxJ {
				continue
			}
			if boundary[nb] || exterior[nb] {
				continue
			}
			exterior[nb] = true
			queue = append(queue, nb)
		}
	}

	interior := make(map[Cell]bool)
	for i := 0; i <= maxI; i++ {
		for j := 0; j <= maxJ; j++ {
			c := Cell{i, j}
			if !boundary[c] && !exterior[c] {
				interior[c] = true
			}
		}
	}

	return RasterGrid{MinI: 0, MinJ: 0, MaxI: maxI, MaxJ: maxJ, Interior: interior}
}

// CellCenter converts a grid cell back to planar (x,y) given the same
// minX/minY/cellSize the caller rasterized with.
func CellCenter(c Cell, minX, minY, cellSize float64) (x, y float64) {
	return minX + (float64(c.I)+0.5)*cellSize, minY + (float64(c.J)+0.5)*cellSize
}

// bresenhamLine marks every grid cell the segment a->b passes through.
func bresenhamLine(a, b Cell, mark map[Cell]bool) {
	x0, y0, x1, y1 := a.I, a.J, b.I, b.J
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		mark[Cell{x0, y0}] = true
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Simplify deletes interior vertices from a polygon while keeping the
// maximum perpendicular deviation at most tolerance, using the linear
// "advance as far as possible within tolerance" heuristic from Design
// Notes §9 — not Douglas-Peucker, which the notes say may change output.
func Simplify(points [][2]float64, tolerance float64) [][2]float64 {
	if len(points) < 3 {
		return points
	}
	result := [][2]float64{points[0]}
	anchor := 0
	for anchor < len(points)-1 {
		farthest := anchor + 1
		for j := anchor + 1; j < len(points); j++ {
			maxDev := 0.0
			for k := anchor + 1; k < j; k++ {
				d := perpDistance(points[anchor], points[j], points[k])
				if d > maxDev {
					maxDev = d
				}
			}
			if maxDev <= tolerance {
				farthest = j
			} else {
				break
			}
		}
		result = append(result, points[farthest])
		anchor = farthest
	}
	return result
}

func perpDistance(a, b, p [2]float64) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	segLen := math.Hypot(dx, dy)
	if segLen < 1e-12 {
		return math.Hypot(p[0]-a[0], p[1]-a[1])
	}
	// cross product magnitude / segment length = perpendicular distance
	cross := (p[0]-a[0])*dy - (p[1]-a[1])*dx
	return math.Abs(cross) / segLen
}
