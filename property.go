package phosphene

import "fmt"

type (
	// Property is one named configuration value of a synthesizer or effect,
	// together with advisory UI metadata. Min/Max/Step are hints for the
	// editor; the core never enforces them, so out-of-range values coming from
	// a file are accepted as-is.
	Property struct {
		Name        string
		Value       any // float64, int, bool, string or Vec3
		UIType      UIType
		Min, Max    float64
		Step        float64
		Label       string
		Description string
	}

	// PropertyList is the ordered set of Properties owned by one instance.
	// The slice order is the declaration order and doubles as the UI order;
	// lookups are linear, which is fine for the dozen-ish properties a unit
	// has.
	PropertyList []Property

	// UIType tags how the editor should present a property.
	UIType string

	// PropertyValue is one serialized name/value pair. Serialized properties
	// are a list rather than a map to keep their order stable in files.
	PropertyValue struct {
		Name  string `yaml:"name" json:"name"`
		Value any    `yaml:"value" json:"value"`
	}
)

const (
	UISlider UIType = "slider"
	UIToggle UIType = "toggle"
	UIColor  UIType = "color"
	UISelect UIType = "select"
	UIVector UIType = "vector"
)

// copyValue value-copies a property value. Vec3s are arrays and copy by
// assignment already; slices and maps in values would alias, so they get fresh
// storage here.
func copyValue(v any) any {
	switch val := v.(type) {
	case []float64:
		ret := make([]float64, len(val))
		copy(ret, val)
		return ret
	case []string:
		ret := make([]string, len(val))
		copy(ret, val)
		return ret
	case map[string]float64:
		ret := make(map[string]float64, len(val))
		for k, e := range val {
			ret[k] = e
		}
		return ret
	}
	return v
}

// Copy makes a deep copy of a Property.
func (p Property) Copy() Property {
	p.Value = copyValue(p.Value)
	return p
}

// Copy makes a deep copy of a PropertyList.
func (pl PropertyList) Copy() PropertyList {
	ret := make(PropertyList, len(pl))
	for i, p := range pl {
		ret[i] = p.Copy()
	}
	return ret
}

// Get returns the value of the named property, or false if no such property
// exists.
func (pl PropertyList) Get(name string) (any, bool) {
	for i := range pl {
		if pl[i].Name == name {
			return pl[i].Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the named property. Numeric values are not
// clamped: bounds are advisory. Setting an unknown name is an error so typos
// do not silently disappear.
func (pl PropertyList) Set(name string, value any) error {
	for i := range pl {
		if pl[i].Name == name {
			pl[i].Value = normalizeNumber(value, pl[i].Value)
			return nil
		}
	}
	return fmt.Errorf("no property %q", name)
}

// normalizeNumber converts numeric values loaded from yaml/json (which may
// arrive as int or float64 regardless of what was saved) to the type of the
// property's current value, so concrete units can type-assert without
// branching.
func normalizeNumber(value, current any) any {
	switch current.(type) {
	case float64:
		switch v := value.(type) {
		case int:
			return float64(v)
		case float64:
			return v
		}
	case int:
		switch v := value.(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	case Vec3:
		switch v := value.(type) {
		case Vec3:
			return v
		case []float64:
			if len(v) == 3 {
				return Vec3{v[0], v[1], v[2]}
			}
		case []any:
			if len(v) == 3 {
				var ret Vec3
				for i, e := range v {
					switch n := e.(type) {
					case float64:
						ret[i] = n
					case int:
						ret[i] = float64(n)
					}
				}
				return ret
			}
		}
	}
	return copyValue(value)
}

// Float returns the named property as a float64, or 0 if it is missing or not
// numeric. Concrete synths and effects read their configuration through these
// accessors.
func (pl PropertyList) Float(name string) float64 {
	if v, ok := pl.Get(name); ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return 0
}

// Int returns the named property as an int, or 0 if it is missing or not
// numeric.
func (pl PropertyList) Int(name string) int {
	if v, ok := pl.Get(name); ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return 0
}

// Bool returns the named property as a bool, or false if missing.
func (pl PropertyList) Bool(name string) bool {
	if v, ok := pl.Get(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// String returns the named property as a string, or "" if missing.
func (pl PropertyList) String(name string) string {
	if v, ok := pl.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Vec returns the named property as a Vec3, or the zero vector if missing.
func (pl PropertyList) Vec(name string) Vec3 {
	if v, ok := pl.Get(name); ok {
		if w, ok := v.(Vec3); ok {
			return w
		}
	}
	return Vec3{}
}
