package conf

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Format selects the output syntax of Encode.
type Format string

const (
	FormatProperties Format = "properties"
	FormatJSON       Format = "json"
	FormatTOML       Format = "toml"
	FormatYAML       Format = "yaml"
)

// Formats lists the formats accepted by Encode.
func Formats() []Format {
	return []Format{FormatProperties, FormatJSON, FormatTOML, FormatYAML}
}

// Encode writes config to w in the given format. The properties format
// uses the same keys as the configuration file and can be read back.
func Encode(w io.Writer, config Config, format Format) error {
	switch format {
	case FormatProperties, "":
		values := config.Values()
		p := properties.NewProperties()
		p.DisableExpansion = true
		for _, prop := range Properties() {
			if v, ok := values[prop.Key()]; ok {
				p.MustSet(prop.Key(), v)
			}
		}
		if _, err := p.Write(w, properties.ISO_8859_1); err != nil {
			return fmt.Errorf("failed to write properties: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(config); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(config); err != nil {
			return fmt.Errorf("failed to write TOML: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(config); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}
