package pointillist_test

import (
	. "github.com/kevin-cantwell/pointillist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Summarize", func() {
	It("is empty without cells", func() {
		Expect(Summarize(nil)).To(Equal(Summary{}))
	})

	It("describes a single cell", func() {
		s := Summarize([]DotFrame{{Width: 1, Height: 1, Cells: []uint{7}}})
		Expect(s).To(Equal(Summary{Frames: 1, Cells: 1, Max: 7, Mean: 7}))
	})

	It("spans every frame", func() {
		s := Summarize([]DotFrame{
			{Width: 2, Height: 1, Cells: []uint{2, 4}},
			{Width: 2, Height: 1, Cells: []uint{4, 6}},
		})
		Expect(s.Frames).To(Equal(2))
		Expect(s.Cells).To(Equal(4))
		Expect(s.Max).To(Equal(6.0))
		Expect(s.Mean).To(Equal(4.0))
		Expect(s.StdDev).To(BeNumerically("~", 1.633, 1e-3))
	})
})
