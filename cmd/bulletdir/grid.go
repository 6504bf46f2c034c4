package main

import (
	"fmt"
	"image/color"

	"starsoldier/gridvis"
	"starsoldier/rom"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellOrigin
	cellDir
)

type cell struct {
	kind cellKind
	dir  uint8 // position among on-grid directions when kind == cellDir
}

var (
	lineColor   = gridvis.MustHex("#000000")
	emptyColor  = gridvis.MustHex("#C0C0C0")
	originColor = gridvis.MustHex("#FFFF00")
	dirColor    = gridvis.MustHex("#FFFFFF")

	originLabel      = "*"
	originLabelColor = gridvis.MustHex("#000000")

	// label color for direction index i is dirLabelColors[i>>4]
	dirLabelColors = gridvis.Palette("#000000", "#0000FF", "#008000", "#FF0000")
)

// grid places each bullet direction as an offset from a fixed origin cell.
type grid struct {
	cells [][]cell
}

func newGrid(w, h int, ox, oy int, dirs []rom.Displacement) *grid {
	if w <= 0 || h <= 0 {
		panic("bulletdir: grid must be at least 1x1")
	}
	if len(dirs) > len(dirLabelColors)<<4 {
		panic(fmt.Sprintf("bulletdir: %d directions exceed label color range", len(dirs)))
	}

	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
	}
	cells[oy][ox] = cell{kind: cellOrigin}

	// labels count only the entries that land on the grid; later entries win
	// when two directions share a cell
	n := 0
	for _, d := range dirs {
		x := ox + int(d.DX)
		y := oy + int(d.DY)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		cells[y][x] = cell{kind: cellDir, dir: uint8(n)}
		n++
	}

	return &grid{cells: cells}
}

func (g *grid) ColCount() int          { return len(g.cells[0]) }
func (g *grid) RowCount() int          { return len(g.cells) }
func (g *grid) LineColor() color.NRGBA { return lineColor }
func (g *grid) CellWidth() int         { return 24 }
func (g *grid) CellHeight() int        { return 24 }

func (g *grid) CellColor(x, y int) color.NRGBA {
	switch g.cells[y][x].kind {
	case cellOrigin:
		return originColor
	case cellDir:
		return dirColor
	default:
		return emptyColor
	}
}

func (g *grid) CellText(x, y int) (string, color.NRGBA, bool) {
	c := g.cells[y][x]
	switch c.kind {
	case cellOrigin:
		return originLabel, originLabelColor, true
	case cellDir:
		return fmt.Sprintf("%02X", c.dir), dirLabelColors[c.dir>>4], true
	default:
		return "", color.NRGBA{}, false
	}
}
