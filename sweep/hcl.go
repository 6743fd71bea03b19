package sweep

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclDefinition mirrors Definition in HCL form:
//
//	name   = "lr-sweep"
//	seed   = 42
//	filter = "lr < 0.1"
//	dimension "lr" { values = [0.001, 0.01] }
type hclDefinition struct {
	Name       string          `hcl:"name,optional"`
	Seed       hcl.Expression  `hcl:"seed,optional"`
	Filter     string          `hcl:"filter,optional"`
	Dimensions []*hclDimension `hcl:"dimension,block"`
}

type hclDimension struct {
	Name   string         `hcl:"name,label"`
	Values hcl.Expression `hcl:"values"`
}

// DecodeHCL parses an HCL definition and validates it. filename is only used
// in diagnostics.
//
// Errors: ErrBadDefinition wrapping HCL diagnostics, or any Validate error.
func DecodeHCL(src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %s", ErrBadDefinition, filename, diags.Error())
	}

	var raw hclDefinition
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %s", ErrBadDefinition, filename, diags.Error())
	}

	def := &Definition{Name: raw.Name, Filter: raw.Filter}
	if raw.Seed != nil {
		seed, err := decodeSeed(raw.Seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: seed: %v", ErrBadDefinition, filename, err)
		}
		def.Seed = seed
	}
	for _, d := range raw.Dimensions {
		vals, err := decodeValues(d.Values)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: dimension %q: %v", ErrBadDefinition, filename, d.Name, err)
		}
		def.Dimensions = append(def.Dimensions, Dimension{Name: d.Name, Values: vals})
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// decodeSeed returns nil for an absent seed.
func decodeSeed(expr hcl.Expression) (*int64, error) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if v.IsNull() {
		return nil, nil
	}
	var seed int64
	if err := gocty.FromCtyValue(v, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func decodeValues(expr hcl.Expression) ([]any, error) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if !v.Type().IsTupleType() && !v.Type().IsListType() {
		return nil, fmt.Errorf("values must be a list, got %s", v.Type().FriendlyName())
	}
	native, err := ctyToNative(v)
	if err != nil {
		return nil, err
	}
	out, _ := native.([]any)
	return out, nil
}

// ctyToNative converts a cty.Value to plain Go values. Integral numbers
// become int, other numbers float64.
func ctyToNative(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if ty.IsPrimitiveType() {
		switch ty {
		case cty.String:
			return val.AsString(), nil
		case cty.Number:
			var i int
			if err := gocty.FromCtyValue(val, &i); err == nil {
				return i, nil
			}
			var f float64
			if err := gocty.FromCtyValue(val, &f); err != nil {
				return nil, err
			}
			return f, nil
		case cty.Bool:
			return val.True(), nil
		default:
			return nil, fmt.Errorf("unsupported primitive type: %s", ty.FriendlyName())
		}
	}
	if ty.IsObjectType() || ty.IsMapType() {
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			nv, err := ctyToNative(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = nv
		}
		return out, nil
	}
	if ty.IsTupleType() || ty.IsListType() || ty.IsSetType() {
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			nv, err := ctyToNative(v)
			if err != nil {
				return nil, err
			}
			out = append(out, nv)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported cty.Type for conversion: %s", ty.FriendlyName())
}
