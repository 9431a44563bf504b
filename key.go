package pointillist

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// KeyFunc maps a pixel to a non-negative intensity. Block aggregation is
// agnostic to what the key measures.
type KeyFunc func(c color.NRGBA) uint

// alphaCutoff is the alpha below which a pixel counts as fully transparent.
const alphaCutoff = 128

// PerceivedBrightness approximates how bright a color looks to the human eye:
// sqrt(0.299 R² + 0.587 G² + 0.114 B²), rounded.
func PerceivedBrightness(r, g, b uint8) uint8 {
	fr, fg, fb := float64(r), float64(g), float64(b)
	v := math.Round(math.Sqrt(0.299*fr*fr + 0.587*fg*fg + 0.114*fb*fb))
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Brightness is the default key. Pixels with alpha below 128 are zero,
// everything else is its perceived brightness scaled by alpha.
func Brightness(c color.NRGBA) uint {
	if c.A < alphaCutoff {
		return 0
	}
	return uint(float64(PerceivedBrightness(c.R, c.G, c.B)) * (float64(c.A) / 255))
}

// Lightness keys on CIE L*, scaled to [0, 255].
var Lightness = alphaScaled(func(c colorful.Color) float64 {
	l, _, _ := c.Lab()
	return l
})

// Hue keys on the HSV hue angle, scaled from [0, 360) to [0, 255].
var Hue = alphaScaled(func(c colorful.Color) float64 {
	h, _, _ := c.Hsv()
	return h / 360
})

// Saturation keys on HSV saturation, scaled to [0, 255].
var Saturation = alphaScaled(func(c colorful.Color) float64 {
	_, s, _ := c.Hsv()
	return s
})

// alphaScaled builds a KeyFunc from a unit-interval measure, applying the
// same transparency policy as Brightness.
func alphaScaled(measure func(colorful.Color) float64) KeyFunc {
	return func(c color.NRGBA) uint {
		if c.A < alphaCutoff {
			return 0
		}
		v := measure(colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		})
		v = math.Max(0, math.Min(1, v))
		return uint(v * 255 * (float64(c.A) / 255))
	}
}

var keys = map[string]KeyFunc{
	"brightness": Brightness,
	"lightness":  Lightness,
	"hue":        Hue,
	"saturation": Saturation,
}

// KeyNames lists the names accepted by KeyByName.
func KeyNames() []string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeyByName returns the named key function. The empty name selects Brightness.
func KeyByName(name string) (KeyFunc, error) {
	if name == "" {
		return Brightness, nil
	}
	key, ok := keys[name]
	if !ok {
		return nil, fmt.Errorf("unknown key %q (want one of %v)", name, KeyNames())
	}
	return key, nil
}
