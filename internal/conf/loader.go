package conf

import (
	"fmt"
	"log/slog"

	"github.com/magiconair/properties"
)

// LoadProperties reads the properties file at path into a flat key/value
// map and applies the notifyWith override on top of it.
//
// The returned map is always usable. If path is empty, or the file cannot
// be read or parsed, the map only holds the override (if any) and the
// returned error describes why the file was skipped. That error is not
// fatal: resolution continues with defaults.
func LoadProperties(path string, notifyWith *string) (map[string]string, error) {
	values, err := readProperties(path)
	if err != nil {
		slog.Debug("cannot read configuration file", "path", path, "error", err)
		values = map[string]string{}
	}

	if notifyWith != nil {
		values[Implementation.Key()] = *notifyWith
	}

	return values, err
}

// readProperties parses a Java style properties file. Values are kept
// verbatim: "${...}" expressions are not expanded.
func readProperties(path string) (map[string]string, error) {
	if path == "" {
		return nil, fmt.Errorf("no configuration file")
	}

	loader := &properties.Loader{
		Encoding:         properties.ISO_8859_1,
		DisableExpansion: true,
	}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return p.Map(), nil
}
