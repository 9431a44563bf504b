package pointillist

import (
	"image"
	"image/gif"
	"io"
	"os"
)

// DefaultDelay is the per-frame delay, in hundredths of a second.
const DefaultDelay = 5

// maxDimension is the largest width or height a GIF logical screen can hold.
const maxDimension = 1<<16 - 1

type EncoderOpt func(enc *Encoder)

// WithDelay sets the delay of every frame, in hundredths of a second.
func WithDelay(delay int) EncoderOpt {
	return func(enc *Encoder) {
		enc.delay = delay
	}
}

// Encoder writes rendered canvases as an infinitely looping animated GIF.
type Encoder struct {
	w     io.Writer
	delay int
}

func NewEncoder(w io.Writer, opts ...EncoderOpt) *Encoder {
	enc := Encoder{
		w:     w,
		delay: DefaultDelay,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

/*
Encode writes frames as one animation. The global color table is Palette
(black, white, transparent); index 2 is the transparency index of every frame
and each frame is disposed to background so that a dot never leaves residue
on the next frame. All frames must be the size of the first one.
*/
func (enc *Encoder) Encode(frames []*image.Paletted) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if enc.delay < 0 || enc.delay > maxDimension {
		return wrapf(ErrEncode, "delay %d out of range", enc.delay)
	}
	bounds := frames[0].Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		return wrapf(ErrEncode, "canvas %dx%d exceeds %d pixels", bounds.Dx(), bounds.Dy(), maxDimension)
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		Disposal:  make([]byte, 0, len(frames)),
		LoopCount: 0, // Forever
		Config: image.Config{
			ColorModel: Palette,
			Width:      bounds.Dx(),
			Height:     bounds.Dy(),
		},
		BackgroundIndex: Background,
	}
	for i, frame := range frames {
		if frame.Bounds() != bounds {
			return wrapf(ErrEncode, "frame %d is %v, want %v", i, frame.Bounds(), bounds)
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, enc.delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	if err := gif.EncodeAll(enc.w, anim); err != nil {
		return wrap(ErrEncode, err)
	}
	return nil
}

// EncodeFile writes frames to a new file at path.
func EncodeFile(path string, frames []*image.Paletted, opts ...EncoderOpt) (err error) {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return wrap(ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = wrap(ErrIO, cerr)
		}
	}()
	return NewEncoder(f, opts...).Encode(frames)
}
