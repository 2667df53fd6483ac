package export

import "github.com/viterin/vek"

// Stats summarizes a sampled document, mostly so exported files carry the
// numbers a renderer needs to preallocate and normalize.
type Stats struct {
	Frames       int     `json:"frames" yaml:"frames"`
	TotalObjects int     `json:"totalObjects" yaml:"totalObjects"`
	MaxObjects   int     `json:"maxObjects" yaml:"maxObjects"`
	MeanObjects  float64 `json:"meanObjects" yaml:"meanObjects"`
	PeakOpacity  float64 `json:"peakOpacity" yaml:"peakOpacity"`
	MeanOpacity  float64 `json:"meanOpacity" yaml:"meanOpacity"`
}

// Measure computes the stats over the given frames.
func Measure(frames []Frame) Stats {
	stats := Stats{Frames: len(frames)}
	if len(frames) == 0 {
		return stats
	}
	counts := make([]float64, len(frames))
	var opacities []float64
	for i, f := range frames {
		counts[i] = float64(len(f.Objects))
		stats.TotalObjects += len(f.Objects)
		for _, o := range f.Objects {
			opacities = append(opacities, o.Properties.Opacity)
		}
	}
	stats.MaxObjects = int(vek.Max(counts))
	stats.MeanObjects = vek.Mean(counts)
	if len(opacities) > 0 {
		stats.PeakOpacity = vek.Max(opacities)
		stats.MeanOpacity = vek.Mean(opacities)
	}
	return stats
}
