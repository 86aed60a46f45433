// Package l10n translates user facing strings of the notifier tools.
package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

var locale gettext.Catalog

func init() {
	domain := gettext.TextDomain{Name: "maven-notifier"}
	locale = domain.UserLocale()
}

// T localizes str. When vars are given, the translation is used as a
// format string.
func T(str string, vars ...interface{}) string {
	translation := locale.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}
