// Package conf resolves the notifier configuration.
//
// # Usage
//
// Resolve the configuration the way the build hook does, next to the running
// executable, with an optional implementation override:
//
//	cfg, err := conf.Resolve(nil)
//
// For custom resolution (e.g., testing), use Resolver:
//
//	r := &conf.Resolver{
//	    Source:     &conf.ConfigSource{Path: "/custom/path/maven-notifier.properties"},
//	    NotifyWith: &implementation,
//	    Table:      conf.NewTable("Linux"),
//	}
//	res, err := r.Resolve()
//
// # Resolution Order
//
// Each property takes the first value found in:
//
//  1. The notifyWith override (implementation only)
//  2. The properties file maven-notifier.properties
//  3. The default of the property table
//
// The default implementation depends on the host: "growl" on macOS and
// Windows, "notifysend" elsewhere.
//
// # Errors
//
// A properties file that cannot be located, read or parsed is skipped and
// reported through Resolution.Fallback. A numeric property that does not
// parse, or is out of range, fails the resolution.
package conf
