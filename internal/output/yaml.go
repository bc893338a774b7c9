package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tmsim/tmconv/pkg/domain"
)

// YAMLFormatter renders a configuration as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the configuration as YAML.
func (f *YAMLFormatter) Format(cfg *domain.Configuration) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(cfg); err != nil {
		return err
	}
	return encoder.Close()
}
