// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trail

import (
	"fmt"

	"github.com/emer/flif/flif"
)

// FromRows returns a food grid, indexed [y][x], from rows of text where
// '#' or '1' is food and '.' or '0' is empty.  All rows must be the same
// length.
func FromRows(rows []string) ([][]int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: trail.FromRows: empty grid", flif.ErrConfig)
	}
	w := len(rows[0])
	grid := make([][]int, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: trail.FromRows: row %d has length %d, not %d", flif.ErrConfig, y, len(row), w)
		}
		grid[y] = make([]int, w)
		for x, c := range []byte(row) {
			switch c {
			case '#', '1':
				grid[y][x] = 1
			case '.', '0':
			default:
				return nil, fmt.Errorf("%w: trail.FromRows: invalid cell %q at %d,%d", flif.ErrConfig, c, x, y)
			}
		}
	}
	return grid, nil
}

// CountFood returns the number of food cells in the grid
func CountFood(grid [][]int) int {
	n := 0
	for _, row := range grid {
		for _, c := range row {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

// DemoRows is a 32x32 broken trail starting next to the default start
// position at 0,0 facing East.  Gaps in the trail require the agent to
// keep moving forward without food ahead.
var DemoRows = []string{
	".######.........................",
	"......#.........................",
	"......#.....#######.............",
	"............#.....#.............",
	"......#...........#.............",
	"......#.....#.....#.............",
	"......#######.....#.....######..",
	"........................#.......",
	"..................#.....#.......",
	"..................#.............",
	"..........###.#####.............",
	"..........#.............#.......",
	"..........#.............#.......",
	"........................#.......",
	"..........#.............##.##...",
	"..........#.................#...",
	"....#######.................#...",
	"....#.......................#...",
	"....#...........................",
	"....#.......................#...",
	"..............####..###.........",
	"..............#.......#.....#...",
	"....#.................#.....#...",
	"....#.........#.......#.....#...",
	"....#####.#####.............#...",
	"......................#.....#...",
	"......................#.....#...",
	"......................#.....#...",
	"......................###..##...",
	"................................",
	"................................",
	"................................",
}

// DemoTrail returns a new copy of the DemoRows food grid
func DemoTrail() [][]int {
	grid, err := FromRows(DemoRows)
	if err != nil {
		panic(err)
	}
	return grid
}
