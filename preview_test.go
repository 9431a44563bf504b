package pointillist_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	. "github.com/kevin-cantwell/pointillist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Preview", func() {
	df := DotFrame{Width: 2, Height: 1, Cells: []uint{255, 0}}
	g := Grid{Padding: 2, Radius: 8}

	It("draws dots in white on black", func() {
		img := Preview(df, g, 255)
		Expect(img.Bounds().Dx()).To(Equal(38))
		Expect(img.Bounds().Dy()).To(Equal(20))
		Expect(img.RGBAAt(10, 10)).To(Equal(color.RGBA{255, 255, 255, 255}))
		Expect(img.RGBAAt(0, 0)).To(Equal(color.RGBA{0, 0, 0, 255}))
		// A zero cell is a single white pixel at its center.
		Expect(img.RGBAAt(28, 10)).To(Equal(color.RGBA{255, 255, 255, 255}))
		Expect(img.RGBAAt(27, 10)).To(Equal(color.RGBA{0, 0, 0, 255}))
		Expect(img.RGBAAt(28, 11)).To(Equal(color.RGBA{0, 0, 0, 255}))
	})

	It("saves a PNG", func() {
		dir, err := os.MkdirTemp("", "pointillist")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "preview.png")
		Expect(WritePreview(path, df, g, 255)).To(Succeed())

		f, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		img, err := png.Decode(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(Equal(38))
	})
})
