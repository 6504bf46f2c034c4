// Package gridvis renders a table of cells, each with a fill color and an
// optional short label, into an image.
package gridvis

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// Grid describes what to draw; x is the column and y the row.
type Grid interface {
	ColCount() int
	RowCount() int

	LineColor() color.NRGBA

	CellWidth() int
	CellHeight() int

	CellColor(x, y int) color.NRGBA
	CellText(x, y int) (text string, clr color.NRGBA, ok bool)
}

var labelFace font.Face = inconsolata.Bold8x16

// Bounds is the image rectangle Visualize produces for g: every cell is
// surrounded by 1px grid lines.
func Bounds(g Grid) image.Rectangle {
	return image.Rect(
		0,
		0,
		g.ColCount()*(g.CellWidth()+1)+1,
		g.RowCount()*(g.CellHeight()+1)+1,
	)
}

// CellRect is the interior of cell (x, y), excluding grid lines.
func CellRect(g Grid, x, y int) image.Rectangle {
	cw, ch := g.CellWidth(), g.CellHeight()
	x0 := 1 + x*(cw+1)
	y0 := 1 + y*(ch+1)
	return image.Rect(x0, y0, x0+cw, y0+ch)
}

func Visualize(g Grid) *image.NRGBA {
	cols, rows := g.ColCount(), g.RowCount()
	if cols <= 0 || rows <= 0 {
		panic("gridvis: grid must have at least one row and column")
	}
	if g.CellWidth() <= 0 || g.CellHeight() <= 0 {
		panic("gridvis: cell size must be positive")
	}

	img := image.NewNRGBA(Bounds(g))

	// grid lines show through wherever no cell is painted
	draw.Draw(img, img.Bounds(), image.NewUniform(g.LineColor()), image.Point{}, draw.Src)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r := CellRect(g, x, y)
			draw.Draw(img, r, image.NewUniform(g.CellColor(x, y)), image.Point{}, draw.Src)

			if s, clr, ok := g.CellText(x, y); ok && s != "" {
				drawCenteredString(img, image.NewUniform(clr), r, s)
			}
		}
	}

	return img
}

func drawCenteredString(g draw.Image, clr image.Image, r image.Rectangle, s string) {
	m := labelFace.Metrics()
	w := font.MeasureString(labelFace, s)

	x := fixed.I(r.Min.X) + (fixed.I(r.Dx())-w)/2
	// baseline such that the ascent+descent box is vertically centered
	y := fixed.I(r.Min.Y) + (fixed.I(r.Dy())-m.Ascent-m.Descent)/2 + m.Ascent

	(&font.Drawer{
		Dst:  clipped{g, r},
		Src:  clr,
		Face: labelFace,
		Dot:  fixed.Point26_6{X: fixed.I(x.Floor()), Y: fixed.I(y.Floor())},
	}).DrawString(s)
}

// clipped keeps labels wider than their cell from bleeding into neighbours.
type clipped struct {
	draw.Image
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.Image.Bounds().Intersect(c.r)
}

func (c clipped) Set(x, y int, clr color.Color) {
	if (image.Point{x, y}).In(c.r) {
		c.Image.Set(x, y, clr)
	}
}

func ExportPNG(name string, g image.Image) (err error) {
	var po *os.File

	po, err = os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer func() {
		if cerr := po.Close(); err == nil {
			err = cerr
		}
	}()

	bo := bufio.NewWriterSize(po, 1024*1024)

	if err = png.Encode(bo, g); err != nil {
		return
	}

	err = bo.Flush()
	return
}
