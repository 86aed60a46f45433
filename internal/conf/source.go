package conf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the name of the properties file looked up next to the
// running executable.
const FileName = "maven-notifier.properties"

// ConfigSource locates the properties file. See the Locate method.
type ConfigSource struct {
	// Path pins the properties file. When empty, FileName is looked up in
	// the directory of the running executable.
	Path string

	// Executable reports the location of the running artifact. It defaults
	// to os.Executable.
	Executable func() (string, error)
}

// Locate returns the location of the properties file. It returns false when
// the location cannot be determined, which callers treat as "no file". The
// returned path is not checked for existence.
func (cs *ConfigSource) Locate() (string, bool) {
	path, err := cs.locate()
	if err != nil {
		slog.Debug("cannot determine configuration file location", "error", err)
		return "", false
	}
	return path, true
}

func (cs *ConfigSource) locate() (string, error) {
	if cs == nil {
		return "", fmt.Errorf("no configuration source")
	}
	if cs.Path != "" {
		return cs.Path, nil
	}

	executable := cs.Executable
	if executable == nil {
		executable = os.Executable
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if exe == "" {
		return "", fmt.Errorf("executable location is empty")
	}

	// Follow symlinks so an executable linked into $PATH still finds the file
	// installed next to it.
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), FileName), nil
}
