package pointillist

import "fmt"

// Aggregate reduces each frame to a grid of blockSize×blockSize blocks whose
// value is the truncated mean of key over the block's in-bounds pixels. Blocks
// on the right and bottom edges may be partial and still yield one cell.
// Aggregate panics if blockSize is zero.
func Aggregate(frames []RawFrame, blockSize int, key KeyFunc) []DotFrame {
	if blockSize < 1 {
		panic(fmt.Sprintf("pointillist: block size must be at least 1, got %d", blockSize))
	}
	if key == nil {
		key = Brightness
	}
	dots := make([]DotFrame, 0, len(frames))
	for _, frame := range frames {
		dots = append(dots, aggregateFrame(frame, blockSize, key))
	}
	return dots
}

// GridSize returns the number of block columns and rows covering a
// width×height frame.
func GridSize(width, height, blockSize int) (cols, rows int) {
	return (width + blockSize - 1) / blockSize, (height + blockSize - 1) / blockSize
}

func aggregateFrame(frame RawFrame, blockSize int, key KeyFunc) DotFrame {
	width, height := int(frame.Width), int(frame.Height)
	cols, rows := GridSize(width, height, blockSize)
	cells := make([]uint, 0, cols*rows)

	// Scan block rows top-bottom, block columns left-right.
	for by := 0; by < height; by += blockSize {
		for bx := 0; bx < width; bx += blockSize {
			var total, count uint
			for y := by; y < by+blockSize && y < height; y++ {
				for x := bx; x < bx+blockSize && x < width; x++ {
					idx := y*width + x
					if idx >= len(frame.Pix) {
						continue
					}
					total += key(frame.Pix[idx])
					count++
				}
			}
			var avg uint
			if count > 0 {
				avg = total / count
			}
			cells = append(cells, avg)
		}
	}

	if len(cells) != cols*rows {
		panic(fmt.Sprintf("pointillist: aggregated %d cells, expected %d×%d", len(cells), cols, rows))
	}
	return DotFrame{
		Width:  uint16(cols),
		Height: uint16(rows),
		Cells:  cells,
	}
}

// MaxIntensity returns the largest cell value across all frames, which is the
// normalization constant shared by every frame of an animation. With no
// cells at all it returns 1. An all-zero animation returns 0; the rasterizer
// treats that as 1 when scaling.
func MaxIntensity(frames []DotFrame) uint {
	var peak uint
	seen := false
	for _, f := range frames {
		for _, v := range f.Cells {
			if !seen || v > peak {
				peak = v
				seen = true
			}
		}
	}
	if !seen {
		return 1
	}
	return peak
}
