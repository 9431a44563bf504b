package pointillist

import (
	"bufio"
	"image"
	"io"
)

// Braille holds one 2x4 cell of a canvas, indexed [x][y] with the origin at
// the top left. A non-zero entry is a raised dot.
//
//	+----------+
//	|(0,0)(1,0)|
//	|(0,1)(1,1)|
//	|(0,2)(1,2)|
//	|(0,3)(1,3)|
//	+----------+
type Braille [2][4]int

// Rune returns the symbol from the Unicode braille block whose raised dots
// match b. Bit n-1 of the offset from U+2800 stands for dot n:
//
//	+------+
//	|(1)(4)|
//	|(2)(5)|
//	|(3)(6)|
//	|(7)(8)|
//	+------+
func (b Braille) Rune() rune {
	r := rune(0x2800)
	for x := range b {
		for y, raised := range b[x] {
			if raised != 0 {
				r |= brailleBits[x][y]
			}
		}
	}
	return r
}

// brailleBits is indexed like Braille.
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// String returns the braille symbol as a one-rune string.
func (b Braille) String() string {
	return string(b.Rune())
}

// WriteBraille prints a rendered canvas as lines of braille symbols, one
// symbol per 2x4 pixel area. Dot pixels become raised dots.
func WriteBraille(w io.Writer, canvas *image.Paletted) error {
	bw := bufio.NewWriter(w)
	bounds := canvas.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var b Braille
			// Draw left-right, top-bottom.
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					if canvas.ColorIndexAt(px+x, py+y) == Dot {
						b[x][y] = 1
					}
				}
			}
			if _, err := bw.WriteRune(b.Rune()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
