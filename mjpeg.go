package pointillist

import (
	"bufio"
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"io"
)

// MJPEGReader splits a stream of concatenated JPEG images on their end of
// image markers.
type MJPEGReader struct {
	r   *bufio.Reader
	buf bytes.Buffer
}

func NewMJPEGReader(r io.Reader) *MJPEGReader {
	return &MJPEGReader{r: bufio.NewReader(r)}
}

// Next decodes the next JPEG of the stream. It returns io.EOF once the stream
// is exhausted, or io.ErrUnexpectedEOF if it ends inside an image.
func (mjpeg *MJPEGReader) Next() (image.Image, error) {
	mjpeg.buf.Reset()
	for {
		c, err := mjpeg.r.ReadByte()
		if err == io.EOF {
			if len(bytes.TrimSpace(mjpeg.buf.Bytes())) == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		mjpeg.buf.WriteByte(c)

		data := mjpeg.buf.Bytes()
		if n := len(data); n > 3 && data[n-2] == 0xff && data[n-1] == 0xd9 {
			img, err := jpeg.Decode(bytes.NewReader(data))
			// An embedded thumbnail ends with its own marker; keep reading.
			if err == io.ErrUnexpectedEOF {
				continue
			}
			return img, err
		}
	}
}

// decodeMJPEG reads every image of an MJPEG stream.
func decodeMJPEG(r io.Reader) ([]image.Image, error) {
	reader := NewMJPEGReader(r)
	var images []image.Image
	for {
		img, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return images, nil
		}
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
}
