package pointillist

import (
	"image"
	"image/color"
)

// Palette indices of a rendered canvas.
const (
	Background  uint8 = 0
	Dot         uint8 = 1
	Transparent uint8 = 2
)

// Palette is the global color table of every output animation: black, white
// and a transparent slot. Background is reserved and never painted; pixels
// outside of a dot stay Transparent.
var Palette = color.Palette{color.Black, color.White, color.Transparent}

// RawFrame is one decoded source frame as row-major, non-premultiplied RGBA.
type RawFrame struct {
	Width  uint16
	Height uint16
	Pix    []color.NRGBA
}

// newRawFrame copies the pixels of img into a RawFrame. Bounds need not start
// at (0, 0).
func newRawFrame(img *image.NRGBA) RawFrame {
	b := img.Bounds()
	f := RawFrame{
		Width:  uint16(b.Dx()),
		Height: uint16(b.Dy()),
		Pix:    make([]color.NRGBA, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			f.Pix = append(f.Pix, img.NRGBAAt(x, y))
		}
	}
	return f
}

// At returns the pixel at column x and row y.
func (f RawFrame) At(x, y int) color.NRGBA {
	return f.Pix[y*int(f.Width)+x]
}

// DotFrame is one downsampled frame: a grid of intensity values, one per
// block of source pixels.
type DotFrame struct {
	Width  uint16
	Height uint16
	Cells  []uint
}

// At returns the intensity of the cell at row and col.
func (f DotFrame) At(row, col int) uint {
	return f.Cells[row*int(f.Width)+col]
}
