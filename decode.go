package pointillist

import (
	"bufio"
	"bytes"
	"errors"
	"image"
	"image/gif"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

type DecoderOpt func(dec *Decoder)

// WithCoalesce composites every GIF frame onto the logical screen, honoring
// disposal methods, so that each decoded frame is full size. Without it each
// frame covers only its own rectangle.
func WithCoalesce() DecoderOpt {
	return func(dec *Decoder) {
		dec.coalesce = true
	}
}

// WithFilter alters every frame before it is converted to RGBA.
func WithFilter(f Filter) DecoderOpt {
	return func(dec *Decoder) {
		dec.filter = f
	}
}

// Decoder reads an animation into RawFrames, in source order. GIF input
// yields one frame per image, a JPEG stream one frame per JPEG, and any other
// registered still format (PNG, BMP, TIFF) a single frame.
type Decoder struct {
	r        io.Reader
	coalesce bool
	filter   Filter
}

func NewDecoder(r io.Reader, opts ...DecoderOpt) *Decoder {
	dec := Decoder{r: r}
	for _, opt := range opts {
		opt(&dec)
	}
	return &dec
}

var (
	gifMagic  = []byte("GIF8")
	jpegMagic = []byte{0xff, 0xd8}
)

// Decode reads every frame of the underlying reader.
func (dec *Decoder) Decode() ([]RawFrame, error) {
	br := bufio.NewReader(dec.r)
	magic, err := br.Peek(len(gifMagic))
	if err != nil && err != io.EOF {
		return nil, wrap(ErrDecode, err)
	}

	var images []image.Image
	switch {
	case bytes.HasPrefix(magic, gifMagic):
		images, err = dec.decodeGIF(br)
	case bytes.HasPrefix(magic, jpegMagic):
		images, err = decodeMJPEG(br)
	default:
		var img image.Image
		img, _, err = image.Decode(br)
		images = []image.Image{img}
	}
	if err != nil {
		return nil, wrap(ErrDecode, err)
	}
	if len(images) == 0 {
		return nil, wrap(ErrDecode, errors.New("no frames"))
	}

	frames := make([]RawFrame, 0, len(images))
	for _, img := range images {
		if dec.filter != nil {
			img = dec.filter.Filter(img)
		}
		if b := img.Bounds(); b.Dx() > maxDimension || b.Dy() > maxDimension {
			return nil, wrapf(ErrDecode, "frame of %dx%d exceeds %d pixels per side", b.Dx(), b.Dy(), maxDimension)
		}
		frames = append(frames, newRawFrame(imaging.Clone(img)))
	}
	return frames, nil
}

func (dec *Decoder) decodeGIF(r io.Reader) ([]image.Image, error) {
	giff, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if dec.coalesce {
		return coalesce(giff), nil
	}
	images := make([]image.Image, len(giff.Image))
	for i, frame := range giff.Image {
		images[i] = frame
	}
	return images, nil
}

// Decode reads every frame from r.
func Decode(r io.Reader, opts ...DecoderOpt) ([]RawFrame, error) {
	return NewDecoder(r, opts...).Decode()
}

// DecodeFile reads every frame of the file at path.
func DecodeFile(path string, opts ...DecoderOpt) ([]RawFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(ErrIO, err)
	}
	defer f.Close()
	return Decode(f, opts...)
}
