package pointillist

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// Preview renders one dot frame as anti-aliased white circles on black. It
// uses the same layout and scaling as Rasterize.
func Preview(df DotFrame, g Grid, peak uint) *image.RGBA {
	width, height := g.CanvasSize(int(df.Width), int(df.Height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	for row := 0; row < int(df.Height); row++ {
		for col := 0; col < int(df.Width); col++ {
			r := g.DotRadius(df.At(row, col), peak)
			cx, cy := g.Center(row, col)
			if r <= 0 {
				img.Set(int(cx), int(cy), color.White)
				continue
			}
			// Rasterize samples pixel indices; draw2d samples pixel centers.
			gc.BeginPath()
			draw2dkit.Circle(gc, cx+0.5, cy+0.5, r)
			gc.Fill()
		}
	}
	return img
}

// WritePreview saves Preview(df, g, peak) as a PNG file.
func WritePreview(path string, df DotFrame, g Grid, peak uint) error {
	if err := draw2dimg.SaveToPngFile(path, Preview(df, g, peak)); err != nil {
		return wrap(ErrIO, err)
	}
	return nil
}
