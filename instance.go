package phosphene

type (
	// Configured is the configuration surface every synthesizer and effect
	// exposes: a stable type tag and ordered, named properties. It is the only
	// mechanism for tuning an instance; nothing else in the core branches on
	// concrete types.
	Configured interface {
		TypeName() string
		GetProperty(name string) (Property, bool)
		SetProperty(name string, value any) error
		IterateProperties(yield func(Property))
	}

	// PropertySet is the embeddable implementation of Configured that all
	// concrete synthesizers and effects use. Each instance owns its list
	// outright; CopyProperties is what Clone implementations call so that
	// clones never alias the original's values.
	PropertySet struct {
		typeName string
		props    PropertyList
	}
)

// NewPropertySet returns a PropertySet owning a deep copy of the given
// properties.
func NewPropertySet(typeName string, props PropertyList) PropertySet {
	return PropertySet{typeName: typeName, props: props.Copy()}
}

func (s *PropertySet) TypeName() string { return s.typeName }

func (s *PropertySet) GetProperty(name string) (Property, bool) {
	for i := range s.props {
		if s.props[i].Name == name {
			return s.props[i].Copy(), true
		}
	}
	return Property{}, false
}

func (s *PropertySet) SetProperty(name string, value any) error {
	return s.props.Set(name, value)
}

func (s *PropertySet) IterateProperties(yield func(Property)) {
	for i := range s.props {
		yield(s.props[i])
	}
}

// Props exposes the list to the concrete unit embedding the set; read access
// only, by convention.
func (s *PropertySet) Props() PropertyList { return s.props }

// CopyProperties returns a PropertySet with a deep copy of the properties, for
// use in Clone implementations.
func (s *PropertySet) CopyProperties() PropertySet {
	return PropertySet{typeName: s.typeName, props: s.props.Copy()}
}

// SerializeProperties flattens an instance's properties to ordered name/value
// pairs of plain values, for the persistence collaborator.
func SerializeProperties(c Configured) []PropertyValue {
	var ret []PropertyValue
	c.IterateProperties(func(p Property) {
		ret = append(ret, PropertyValue{Name: p.Name, Value: copyValue(p.Value)})
	})
	return ret
}

// ApplySerializedProperties sets the given name/value pairs on an instance.
// Names the instance does not declare are skipped, so properties removed in a
// newer version do not make old files unloadable; properties missing from the
// pairs keep their defaults. Values are not clamped to the advisory bounds.
func ApplySerializedProperties(c Configured, values []PropertyValue) {
	for _, v := range values {
		if _, ok := c.GetProperty(v.Name); ok {
			c.SetProperty(v.Name, v.Value)
		}
	}
}
