package sweep

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// DecodeYAML reads a YAML definition from r and validates it.
//
// Errors: ErrBadDefinition wrapping the decoder error, or any Validate error.
func DecodeYAML(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrBadDefinition, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// EncodeYAML writes def to w in the YAML definition format.
func EncodeYAML(w io.Writer, def *Definition) error {
	return yaml.NewEncoder(w).Encode(def)
}
