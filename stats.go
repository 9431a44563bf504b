package pointillist

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the intensities of an animation.
type Summary struct {
	Frames int
	Cells  int
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes intensity statistics over every cell of every frame.
func Summarize(frames []DotFrame) Summary {
	var values []float64
	for _, f := range frames {
		for _, v := range f.Cells {
			values = append(values, float64(v))
		}
	}
	s := Summary{Frames: len(frames), Cells: len(values)}
	if len(values) == 0 {
		return s
	}
	s.Max = floats.Max(values)
	if len(values) == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d frames, %d cells, max %.0f, mean %.1f, stddev %.1f",
		s.Frames, s.Cells, s.Max, s.Mean, s.StdDev)
}
