package conf

import (
	"runtime"
	"strings"
)

// OSFamily is the coarse classification of a host operating system.
type OSFamily int

const (
	OSOther OSFamily = iota
	OSMacOS
	OSWindows
)

func (f OSFamily) String() string {
	switch f {
	case OSMacOS:
		return "macos"
	case OSWindows:
		return "windows"
	default:
		return "other"
	}
}

// Classify matches osName case-insensitively: anything containing "mac" is
// macOS, anything containing "win" is Windows, the rest is OSOther.
func Classify(osName string) OSFamily {
	os := strings.ToLower(osName)
	switch {
	case strings.Contains(os, "mac"):
		return OSMacOS
	case strings.Contains(os, "win"):
		return OSWindows
	default:
		return OSOther
	}
}

// DefaultImplementation returns the notifier used when none is configured.
func (f OSFamily) DefaultImplementation() string {
	if f == OSMacOS || f == OSWindows {
		return "growl"
	}
	return "notifysend"
}

// HostOSName returns a human readable name of the running operating system.
// GOOS values are mapped onto the names JVM hosts report ("Mac OS X",
// "Windows", "Linux") because "darwin" would otherwise classify as Windows.
func HostOSName() string {
	return osNameForGOOS(runtime.GOOS)
}

func osNameForGOOS(goos string) string {
	switch goos {
	case "darwin":
		return "Mac OS X"
	case "windows":
		return "Windows"
	case "":
		return ""
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}
