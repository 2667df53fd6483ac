package synths

import (
	"math"

	"github.com/velverin/phosphene"
)

// Terrain is a ground plane of tiles displaced by the notes playing: each
// active note pushes up a bump centered on its pitch column, and the bumps of
// overlapping notes add up into a rolling landscape.
type Terrain struct {
	phosphene.PropertySet
}

func NewTerrain() *Terrain {
	props := append(adsrProperties(0.1, 0.3, 0.5, 1.0), phosphene.PropertyList{
		{Name: "tiles", Value: 24, UIType: phosphene.UISlider, Min: 4, Max: 64, Step: 1,
			Label: "Tiles", Description: "Number of tiles along X"},
		{Name: "tileSize", Value: 0.5, UIType: phosphene.UISlider, Min: 0.1, Max: 2, Step: 0.05,
			Label: "Tile size", Description: "Edge length of one tile"},
		{Name: "bumpHeight", Value: 2.0, UIType: phosphene.UISlider, Min: 0.1, Max: 10, Step: 0.1,
			Label: "Bump height", Description: "Tile lift under a full-velocity note"},
		{Name: "bumpWidth", Value: 6.0, UIType: phosphene.UISlider, Min: 1, Max: 24, Step: 0.5,
			Label: "Bump width", Description: "Bump spread, in semitones"},
	}...)
	return &Terrain{PropertySet: phosphene.NewPropertySet("terrain", props)}
}

func (s *Terrain) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	tiles := props.Int("tiles")
	tileSize := props.Float("tileSize")
	bumpHeight := props.Float("bumpHeight")
	bumpWidth := props.Float("bumpWidth")
	if tiles < 1 {
		return nil
	}

	heights := make([]float64, tiles)
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		// map pitch 0..127 onto the tile row, bump falls off as a gaussian
		center := float64(n.Pitch) / 127 * float64(tiles-1)
		for i := range heights {
			d := (float64(i) - center) * 128 / float64(tiles) / bumpWidth
			heights[i] += bumpHeight * float64(n.Velocity) / 127 * n.Amplitude * math.Exp(-d*d)
		}
	})

	ret := make([]phosphene.VisualObject, 0, tiles)
	for i, h := range heights {
		ret = append(ret, phosphene.VisualObject{
			Type: "box",
			Properties: phosphene.ObjectProperties{
				Position: phosphene.Vec3{(float64(i) - float64(tiles-1)/2) * tileSize, h / 2, 0},
				Scale:    phosphene.Vec3{tileSize * 0.95, 0.1 + h, tileSize * 0.95},
				Color:    phosphene.HueColor(160-h*30, 0.6, 0.35+0.1*h),
				Opacity:  1,
			},
		})
	}
	return ret
}

func (s *Terrain) Clone() phosphene.Synthesizer {
	return &Terrain{PropertySet: s.CopyProperties()}
}
