package sweep

import (
	"fmt"
)

// Definition is the file form of a sweep: a named space, an optional filter
// and an optional seed for sampling.
type Definition struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Seed       *int64      `yaml:"seed,omitempty" json:"seed,omitempty"`
	Filter     string      `yaml:"filter,omitempty" json:"filter,omitempty"`
	Dimensions []Dimension `yaml:"dimensions" json:"dimensions"`
}

// Validate checks the structure without building the space.
//
// Errors: ErrNoDimensions, ErrBadDefinition, ErrDuplicateDimension.
func (d *Definition) Validate() error {
	if len(d.Dimensions) == 0 {
		return ErrNoDimensions
	}
	seen := make(map[string]struct{}, len(d.Dimensions))
	for i, dim := range d.Dimensions {
		if dim.Name == "" {
			return fmt.Errorf("dimension %d: missing name: %w", i, ErrBadDefinition)
		}
		if _, dup := seen[dim.Name]; dup {
			return fmt.Errorf("dimension %q: %w", dim.Name, ErrDuplicateDimension)
		}
		seen[dim.Name] = struct{}{}
		if len(dim.Values) == 0 {
			return fmt.Errorf("dimension %q: no values: %w", dim.Name, ErrBadDefinition)
		}
	}
	return nil
}

// Build constructs the space and compiles the filter. The filter is nil when
// the definition has none.
func (d *Definition) Build() (*Space, *Filter, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	space, err := NewSpace(d.Dimensions...)
	if err != nil {
		return nil, nil, err
	}
	if d.Filter == "" {
		return space, nil, nil
	}
	filter, err := CompileFilter(d.Filter, space)
	if err != nil {
		return nil, nil, err
	}
	return space, filter, nil
}
