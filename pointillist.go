/*
Package pointillist turns animated images into pointillist animations. Each
frame is reduced to a grid of blocks, each block's mean intensity sets the
radius of a circle, and the circles are written out as a two-tone animated GIF
with the source frame count and a uniform delay.

The pipeline runs in two passes: every frame is aggregated before any is
rasterized, since circle radii are scaled against the brightest block of the
whole animation.
*/
package pointillist

import (
	"image"
	"io"
	"os"
)

// Result holds the intermediate products of a conversion.
type Result struct {
	Dots     []DotFrame
	Canvases []*image.Paletted
	Max      uint
}

// Convert decodes r, renders it as described by cfg and writes the animation
// to w.
func Convert(r io.Reader, w io.Writer, cfg Config) (*Result, error) {
	res, err := Render(r, cfg)
	if err != nil {
		return nil, err
	}
	if err := NewEncoder(w, WithDelay(cfg.Delay)).Encode(res.Canvases); err != nil {
		return nil, err
	}
	return res, nil
}

// Render decodes r and rasterizes it without encoding.
func Render(r io.Reader, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key, err := KeyByName(cfg.Key)
	if err != nil {
		return nil, err
	}

	var opts []DecoderOpt
	if cfg.Coalesce {
		opts = append(opts, WithCoalesce())
	}
	if adj := cfg.Adjustments(); !adj.IsZero() {
		opts = append(opts, WithFilter(adj))
	}
	frames, err := Decode(r, opts...)
	if err != nil {
		return nil, err
	}

	res := &Result{Dots: Aggregate(frames, cfg.BlockSize, key)}
	res.Max = MaxIntensity(res.Dots)
	res.Canvases, err = Rasterize(res.Dots, cfg.Grid(), res.Max)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ConvertFile reads the animation at in and writes the result to out. The
// output file is only created once rendering has succeeded.
func ConvertFile(in, out string, cfg Config) (res *Result, err error) {
	src, err := os.Open(in)
	if err != nil {
		return nil, wrap(ErrIO, err)
	}
	defer src.Close()

	res, err = Render(src, cfg)
	if err != nil {
		return nil, err
	}
	if err := EncodeFile(out, res.Canvases, WithDelay(cfg.Delay)); err != nil {
		return nil, err
	}
	return res, nil
}
