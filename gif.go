package pointillist

import (
	"image"
	"image/draw"
	"image/gif"
)

/*
coalesce draws each frame of giff over the previous state of the logical
screen and returns a full-screen snapshot per frame. Disposal methods are
respected once the snapshot is taken.
*/
func coalesce(giff *gif.GIF) []image.Image {
	screen := image.NewNRGBA(screenBounds(giff))
	snapshots := make([]image.Image, 0, len(giff.Image))

	for i, frame := range giff.Image {
		var disposal byte
		if i < len(giff.Disposal) {
			disposal = giff.Disposal[i]
		}

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = image.NewNRGBA(screen.Bounds())
			copy(previous.Pix, screen.Pix)
		}

		// Transparent pixels of the frame leave the screen untouched.
		draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		snapshot := image.NewNRGBA(screen.Bounds())
		copy(snapshot.Pix, screen.Pix)
		snapshots = append(snapshots, snapshot)

		switch disposal {
		// Dispose previous essentially means draw then undo
		case gif.DisposalPrevious:
			screen = previous
		// Dispose background clears the frame's rectangle
		case gif.DisposalBackground:
			draw.Draw(screen, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		}
	}
	return snapshots
}

// screenBounds is the logical screen of giff, or the union of its frames when
// the header leaves it empty.
func screenBounds(giff *gif.GIF) image.Rectangle {
	if giff.Config.Width > 0 && giff.Config.Height > 0 {
		return image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	}
	var r image.Rectangle
	for _, frame := range giff.Image {
		r = r.Union(frame.Bounds())
	}
	return r
}
