package conf

import (
	"log/slog"
)

// Resolver produces the notifier configuration for one invocation. See the
// Resolve method.
type Resolver struct {
	// Source locates the properties file. A nil Source looks next to the
	// running executable.
	Source *ConfigSource

	// NotifyWith, when not nil, replaces the configured implementation.
	NotifyWith *string

	// Table provides the defaults. A nil Table uses HostTable.
	Table *Table
}

// Resolution is the outcome of Resolver.Resolve.
type Resolution struct {
	Config Config

	// Path is the properties file that was looked up, empty when no
	// location could be determined.
	Path string

	// Fallback is non-nil when the properties file was not used and
	// defaults apply. It is informational, never a failure.
	Fallback error
}

// Resolve locates and reads the properties file, applies the override and
// builds the configuration. A missing or unreadable file is not an error.
// The only failures are values that cannot be converted to their type.
func (r *Resolver) Resolve() (Resolution, error) {
	source := r.Source
	if source == nil {
		source = &ConfigSource{}
	}
	table := r.Table
	if table == nil {
		table = HostTable
	}

	path, _ := source.Locate()
	values, fallback := LoadProperties(path, r.NotifyWith)

	config, err := table.Build(values)
	if err != nil {
		return Resolution{Path: path, Fallback: fallback}, err
	}
	slog.Debug("notifier will use configuration", "path", path, "config", config)

	return Resolution{Config: config, Path: path, Fallback: fallback}, nil
}

// Resolve resolves the configuration next to the running executable.
func Resolve(notifyWith *string) (Config, error) {
	r := &Resolver{NotifyWith: notifyWith}
	res, err := r.Resolve()
	if err != nil {
		return Config{}, err
	}
	return res.Config, nil
}
