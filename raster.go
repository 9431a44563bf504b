package pointillist

import (
	"image"
	"math"
)

// Grid lays dots out on a canvas. Each cell occupies a 2*Radius square with
// Padding pixels between neighbours and around the border.
type Grid struct {
	Padding int
	Radius  int
}

// pitch is the distance between the centers of adjacent cells.
func (g Grid) pitch() int {
	return 2*g.Radius + g.Padding
}

// CanvasSize returns the pixel size of a canvas holding cols×rows cells.
func (g Grid) CanvasSize(cols, rows int) (width, height int) {
	return cols*g.pitch() + g.Padding, rows*g.pitch() + g.Padding
}

// Center returns the canvas coordinates of the center of the cell at row and col.
func (g Grid) Center(row, col int) (cx, cy float64) {
	cx = float64(g.Padding + col*g.pitch() + g.Radius)
	cy = float64(g.Padding + row*g.pitch() + g.Radius)
	return cx, cy
}

// DotRadius scales an intensity linearly against peak: zero maps to 0 and peak
// maps to the full Radius. A peak of zero is treated as 1.
func (g Grid) DotRadius(v, peak uint) float64 {
	if peak < 1 {
		peak = 1
	}
	return float64(v) / float64(peak) * float64(g.Radius)
}

// Rasterize renders each dot frame as filled circles on a paletted canvas.
// The canvas size comes from the first frame's grid; every frame must share
// it. Uncovered pixels are Transparent, covered pixels are Dot.
func Rasterize(dots []DotFrame, g Grid, peak uint) ([]*image.Paletted, error) {
	if len(dots) == 0 {
		return nil, nil
	}
	cols, rows := int(dots[0].Width), int(dots[0].Height)
	width, height := g.CanvasSize(cols, rows)

	canvases := make([]*image.Paletted, 0, len(dots))
	for i, df := range dots {
		if int(df.Width) != cols || int(df.Height) != rows {
			return nil, wrapf(ErrEncode, "frame %d has a %dx%d grid, want %dx%d", i, df.Width, df.Height, cols, rows)
		}
		canvas := image.NewPaletted(image.Rect(0, 0, width, height), Palette)
		for p := range canvas.Pix {
			canvas.Pix[p] = Transparent
		}
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				cx, cy := g.Center(row, col)
				fillCircle(canvas, cx, cy, g.DotRadius(df.At(row, col), peak))
			}
		}
		canvases = append(canvases, canvas)
	}
	return canvases, nil
}

// fillCircle sets every pixel within r of (cx, cy) to Dot, clipped to the
// canvas. A zero radius still marks the center pixel.
func fillCircle(canvas *image.Paletted, cx, cy, r float64) {
	b := canvas.Bounds()
	x0 := int(math.Floor(math.Max(cx-r, float64(b.Min.X))))
	x1 := int(math.Ceil(math.Min(cx+r, float64(b.Max.X-1))))
	y0 := int(math.Floor(math.Max(cy-r, float64(b.Min.Y))))
	y1 := int(math.Ceil(math.Min(cy+r, float64(b.Max.Y-1))))
	r2 := r * r
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				canvas.Pix[canvas.PixOffset(x, y)] = Dot
			}
		}
	}
}
