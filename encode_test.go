package pointillist_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"

	. "github.com/kevin-cantwell/pointillist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func canvas(w, h int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), Palette)
	for i := range img.Pix {
		img.Pix[i] = Transparent
	}
	return img
}

var _ = Describe("Encoder", func() {
	var frames []*image.Paletted

	BeforeEach(func() {
		frames = []*image.Paletted{canvas(6, 4), canvas(6, 4), canvas(6, 4)}
		frames[0].SetColorIndex(1, 1, Dot)
		frames[1].SetColorIndex(2, 2, Dot)
		frames[2].SetColorIndex(5, 3, Dot)
	})

	It("writes a looping two-tone animation", func() {
		var buf bytes.Buffer
		Expect(NewEncoder(&buf, WithDelay(7)).Encode(frames)).To(Succeed())

		anim, err := gif.DecodeAll(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.LoopCount).To(Equal(0))
		Expect(anim.Image).To(HaveLen(3))
		Expect(anim.Delay).To(Equal([]int{7, 7, 7}))
		Expect(anim.Disposal).To(Equal([]byte{gif.DisposalBackground, gif.DisposalBackground, gif.DisposalBackground}))
		Expect(anim.Config.Width).To(Equal(6))
		Expect(anim.Config.Height).To(Equal(4))

		for i, img := range anim.Image {
			Expect(img.Pix).To(Equal(frames[i].Pix))
			Expect(img.Palette[0]).To(Equal(color.Color(color.RGBA{0, 0, 0, 255})))
			Expect(img.Palette[1]).To(Equal(color.Color(color.RGBA{255, 255, 255, 255})))
			_, _, _, a := img.Palette[2].RGBA()
			Expect(a).To(Equal(uint32(0)))
		}
	})

	It("defaults to a delay of 5", func() {
		var buf bytes.Buffer
		Expect(NewEncoder(&buf).Encode(frames[:1])).To(Succeed())
		anim, err := gif.DecodeAll(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Delay).To(Equal([]int{5}))
	})

	It("omits the loop extension for a single frame", func() {
		var buf bytes.Buffer
		Expect(NewEncoder(&buf).Encode(frames[:1])).To(Succeed())
		anim, err := gif.DecodeAll(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.LoopCount).To(Equal(-1))
	})

	It("requires at least one frame", func() {
		err := NewEncoder(&bytes.Buffer{}).Encode(nil)
		Expect(errors.Is(err, ErrNoFrames)).To(BeTrue())
	})

	It("rejects frames of a different size", func() {
		frames = append(frames, canvas(5, 4))
		err := NewEncoder(&bytes.Buffer{}).Encode(frames)
		Expect(errors.Is(err, ErrEncode)).To(BeTrue())
	})

	It("rejects canvases too large for GIF", func() {
		err := NewEncoder(&bytes.Buffer{}).Encode([]*image.Paletted{canvas(1<<16, 1)})
		Expect(errors.Is(err, ErrEncode)).To(BeTrue())
	})

	It("reports writer failures as encode errors", func() {
		err := NewEncoder(failingWriter{}).Encode(frames)
		Expect(errors.Is(err, ErrEncode)).To(BeTrue())
	})

	Describe("EncodeFile", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "pointillist")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		It("writes the animation to disk", func() {
			path := filepath.Join(dir, "out.gif")
			Expect(EncodeFile(path, frames)).To(Succeed())
			f, err := os.Open(path)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()
			anim, err := gif.DecodeAll(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(anim.Image).To(HaveLen(3))
		})

		It("fails with an i/o error when the file cannot be created", func() {
			err := EncodeFile(filepath.Join(dir, "missing", "out.gif"), frames)
			Expect(errors.Is(err, ErrIO)).To(BeTrue())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})
})
