package sweep

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvgrid/internal/ctxlog"
)

// Supported definition file formats.
const (
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// FormatOf returns the definition format implied by the file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// LoadFile reads and decodes a definition file, choosing the decoder by
// extension.
func LoadFile(ctx context.Context, path string) (*Definition, error) {
	logger := ctxlog.FromContext(ctx)
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loading sweep definition.", "path", path, "format", format)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", path, err)
	}

	var def *Definition
	switch format {
	case FormatYAML:
		def, err = DecodeYAML(bytes.NewReader(src))
	case FormatHCL:
		def, err = DecodeHCL(src, path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded sweep definition.", "path", path, "name", def.Name, "dimensions", len(def.Dimensions))
	return def, nil
}
