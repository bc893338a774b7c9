package output

import (
	"encoding/json"
	"io"

	"github.com/tmsim/tmconv/pkg/domain"
)

// JSONFormatter renders a configuration as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a JSON formatter.
// With indent set, output is pretty-printed for terminals; without it,
// output is compact (the form written to files).
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the configuration as JSON.
func (f *JSONFormatter) Format(cfg *domain.Configuration) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = json.Marshal(cfg)
	}
	if err != nil {
		return err
	}

	if _, err = f.writer.Write(data); err != nil {
		return err
	}

	if f.indent {
		// Trailing newline for terminal output.
		_, err = f.writer.Write([]byte("\n"))
	}
	return err
}
