// Package output renders an assembled configuration to the interchange
// formats consumed by simulator tooling.
package output

import (
	"fmt"
	"io"

	"github.com/tmsim/tmconv/pkg/domain"
)

// Format names for the --format flag and config file.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formatter renders a configuration to its destination.
type Formatter interface {
	Format(cfg *domain.Configuration) error
}

// NewFormatter selects a formatter by name.
// The indent flag only affects JSON; YAML is always indented.
func NewFormatter(format string, w io.Writer, indent bool) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(w, indent), nil
	case FormatYAML:
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
