package pointillist

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Filter alters a frame before it is aggregated.
type Filter interface {
	Filter(image.Image) image.Image
}

// FilterFunc adapts a plain function to a Filter.
type FilterFunc func(image.Image) image.Image

func (f FilterFunc) Filter(img image.Image) image.Image {
	return f(img)
}

// Adjustments is a Filter of tone corrections, applied in field order. Zero
// values leave the frame untouched, except Gamma and Scale where 1 is neutral
// and 0 is treated as 1.
type Adjustments struct {
	// Scale resamples the frame by this factor.
	Scale float64
	// Gamma less than 1.0 darkens the frame, greater than 1.0 lightens it.
	Gamma float64
	// Brightness in [-100, 100].
	Brightness float64
	// Sharpen sigma. 0 disables sharpening.
	Sharpen float64
	// Contrast in [-100, 100].
	Contrast float64
	// SigmoidMidpoint in [0, 1] and SigmoidFactor apply a sigmoidal contrast
	// curve when the factor is non-zero.
	SigmoidMidpoint float64
	SigmoidFactor   float64
	// Invert negates every color.
	Invert bool
}

// IsZero reports whether a leaves frames unchanged.
func (a Adjustments) IsZero() bool {
	return (a.Scale == 0 || a.Scale == 1) &&
		(a.Gamma == 0 || a.Gamma == 1) &&
		a.Brightness == 0 && a.Sharpen == 0 && a.Contrast == 0 &&
		a.SigmoidFactor == 0 && !a.Invert
}

func (a Adjustments) Filter(img image.Image) image.Image {
	if a.Scale > 0 && a.Scale != 1 {
		b := img.Bounds()
		width := uint(float64(b.Dx())*a.Scale + 0.5)
		height := uint(float64(b.Dy())*a.Scale + 0.5)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		img = resize.Resize(width, height, img, resize.Bilinear)
	}
	if a.Gamma > 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen > 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, a.SigmoidMidpoint, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}
