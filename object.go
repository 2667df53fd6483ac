package phosphene

type (
	// Vec3 is a three-component vector used for positions, rotations
	// (degrees) and scales. Being a plain array, assignment always copies it,
	// so two VisualObjects can never share a position/rotation/scale by
	// reference.
	Vec3 [3]float64

	// VisualObject is the render-ready descriptor crossing into the renderer:
	// a type tag and the spatial/color properties of one object. It is a plain
	// value; pipeline stages copy and modify, never mutate in place.
	VisualObject struct {
		Type       string           `yaml:"type" json:"type"`
		Properties ObjectProperties `yaml:"properties" json:"properties"`
	}

	// ObjectProperties are the renderer-facing properties of a VisualObject.
	// Rotation is in degrees. Color is a hex string like "#ff8800". Opacity is
	// 0..1; synthesizers always set it explicitly, so a zero opacity means
	// invisible, not unset.
	ObjectProperties struct {
		Position Vec3    `yaml:"position,flow" json:"position"`
		Rotation Vec3    `yaml:"rotation,flow,omitempty" json:"rotation"`
		Scale    Vec3    `yaml:"scale,flow" json:"scale"`
		Color    string  `yaml:"color" json:"color"`
		Opacity  float64 `yaml:"opacity" json:"opacity"`
	}
)

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

func (v Vec3) Scaled(f float64) Vec3 {
	return Vec3{v[0] * f, v[1] * f, v[2] * f}
}

// Uniform returns a Vec3 with all three components set to f, used for uniform
// scales.
func Uniform(f float64) Vec3 {
	return Vec3{f, f, f}
}

// CopyObjects returns a fresh slice with copies of every object. VisualObjects
// are plain values so an element copy is already a deep copy; the point of this
// helper is getting a slice whose backing array is not shared with the input.
func CopyObjects(objects []VisualObject) []VisualObject {
	ret := make([]VisualObject, len(objects))
	copy(ret, objects)
	return ret
}
