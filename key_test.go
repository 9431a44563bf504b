package pointillist_test

import (
	"image/color"

	. "github.com/kevin-cantwell/pointillist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Keys", func() {
	DescribeTable("PerceivedBrightness",
		func(r, g, b, want int) {
			Expect(PerceivedBrightness(uint8(r), uint8(g), uint8(b))).To(Equal(uint8(want)))
		},
		Entry("black", 0, 0, 0, 0),
		Entry("white", 255, 255, 255, 255),
		Entry("red", 255, 0, 0, 139),
		Entry("green", 0, 255, 0, 195),
		Entry("blue", 0, 0, 255, 86),
		Entry("mid grey", 128, 128, 128, 128),
	)

	Describe("Brightness", func() {
		It("zeroes pixels with alpha below 128 regardless of color", func() {
			Expect(Brightness(color.NRGBA{255, 255, 255, 0})).To(Equal(uint(0)))
			Expect(Brightness(color.NRGBA{255, 255, 255, 127})).To(Equal(uint(0)))
		})

		It("scales brightness by alpha", func() {
			Expect(Brightness(color.NRGBA{255, 255, 255, 255})).To(Equal(uint(255)))
			Expect(Brightness(color.NRGBA{255, 255, 255, 128})).To(Equal(uint(128)))
			Expect(Brightness(color.NRGBA{255, 0, 0, 200})).To(Equal(uint(109)))
		})

		It("never exceeds 255", func() {
			for r := 0; r < 256; r += 15 {
				for g := 0; g < 256; g += 15 {
					for b := 0; b < 256; b += 15 {
						Expect(Brightness(color.NRGBA{uint8(r), uint8(g), uint8(b), 255})).To(BeNumerically("<=", 255))
					}
				}
			}
		})
	})

	Describe("colorful keys", func() {
		It("measures lightness", func() {
			Expect(Lightness(color.NRGBA{0, 0, 0, 255})).To(Equal(uint(0)))
			Expect(Lightness(color.NRGBA{255, 255, 255, 255})).To(BeNumerically(">=", 254))
			Expect(Lightness(color.NRGBA{255, 255, 255, 0})).To(Equal(uint(0)))
		})

		It("measures hue", func() {
			Expect(Hue(color.NRGBA{255, 0, 0, 255})).To(Equal(uint(0)))
			Expect(Hue(color.NRGBA{0, 0, 255, 255})).To(BeNumerically("~", 170, 1))
		})

		It("measures saturation", func() {
			Expect(Saturation(color.NRGBA{128, 128, 128, 255})).To(Equal(uint(0)))
			Expect(Saturation(color.NRGBA{255, 0, 0, 255})).To(Equal(uint(255)))
		})
	})

	Describe("KeyByName", func() {
		It("defaults to brightness", func() {
			key, err := KeyByName("")
			Expect(err).NotTo(HaveOccurred())
			Expect(key(color.NRGBA{255, 255, 255, 255})).To(Equal(uint(255)))
		})

		It("lists every key", func() {
			Expect(KeyNames()).To(Equal([]string{"brightness", "hue", "lightness", "saturation"}))
			for _, name := range KeyNames() {
				_, err := KeyByName(name)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("rejects unknown names", func() {
			_, err := KeyByName("chroma")
			Expect(err).To(HaveOccurred())
		})
	})
})
