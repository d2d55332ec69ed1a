package export

import "fmt"

// Exporter renders a report in a specific output format
type Exporter interface {
	// Export encodes v in the target format
	Export(v any) ([]byte, error)

	// Name returns the exporter name (e.g., "json", "yaml", "toml")
	Name() string
}

// Formats lists the supported output formats.
var Formats = []string{"json", "yaml", "toml"}

// NewExporter returns the exporter for format; "" means json.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "", "json":
		return NewJSONExporter(), nil
	case "yaml", "yml":
		return NewYAMLExporter(), nil
	case "toml":
		return NewTOMLExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
