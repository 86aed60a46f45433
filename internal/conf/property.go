package conf

// OSNameKey, when present in the loaded values, replaces the host operating
// system name for the computed implementation default.
const OSNameKey = "os.name"

// NotifyWithKey names the override channel. When it is set, its value
// replaces whatever the properties file says about the implementation.
const NotifyWithKey = "notifyWith"

// Property identifies one configurable setting of the notifier.
type Property int

const (
	Implementation Property = iota
	NotifySendPath
	NotifySendTimeout
	NotificationCenterPath
	NotificationCenterActivate
	NotificationCenterSound
	GrowlPort
	GrowlHost
	GrowlPassword
	SystemTrayWait
	SnarlPort
	SnarlHost
	SnarlPassword
	ShortDescription
	PushbulletAPIKey
	PushbulletDevice
)

// propertyDef is a row of the property table. A computed property has its
// default resolved at build time from the host operating system.
type propertyDef struct {
	key          string
	defaultValue string
	computed     bool
}

var propertyTable = [...]propertyDef{
	Implementation:             {key: "notifier.implementation", computed: true},
	NotifySendPath:             {key: "notifier.notify-send.path", defaultValue: "notify-send"},
	NotifySendTimeout:          {key: "notifier.notify-send.timeout", defaultValue: "2000"},
	NotificationCenterPath:     {key: "notifier.notification-center.path", defaultValue: "terminal-notifier"},
	NotificationCenterActivate: {key: "notifier.notification-center.activate", defaultValue: "com.apple.Terminal"},
	NotificationCenterSound:    {key: "notifier.notification-center.sound"},
	GrowlPort:                  {key: "notifier.growl.port", defaultValue: "23053"},
	GrowlHost:                  {key: "notifier.growl.host"},
	GrowlPassword:              {key: "notifier.growl.password"},
	SystemTrayWait:             {key: "notifier.system-tray.wait", defaultValue: "2000"},
	SnarlPort:                  {key: "notifier.snarl.port", defaultValue: "9887"},
	SnarlHost:                  {key: "notifier.snarl.host", defaultValue: "localhost"},
	SnarlPassword:              {key: "notifier.snarl.password"},
	ShortDescription:           {key: "notifier.message.short", defaultValue: "false"},
	PushbulletAPIKey:           {key: "notifier.pushbullet.apikey"},
	PushbulletDevice:           {key: "notifier.pushbullet.device"},
}

// Properties returns every known property in table order.
func Properties() []Property {
	all := make([]Property, len(propertyTable))
	for i := range propertyTable {
		all[i] = Property(i)
	}
	return all
}

// LookupProperty returns the property stored under key in the properties file.
func LookupProperty(key string) (Property, bool) {
	for i, def := range propertyTable {
		if def.key == key {
			return Property(i), true
		}
	}
	return 0, false
}

func (p Property) valid() bool {
	return p >= 0 && int(p) < len(propertyTable)
}

// Key returns the string used for p in the properties file.
func (p Property) Key() string {
	if !p.valid() {
		return ""
	}
	return propertyTable[p].key
}

// DefaultValue returns the static default of p. Computed properties and
// properties without a default return an empty string.
func (p Property) DefaultValue() string {
	if !p.valid() {
		return ""
	}
	return propertyTable[p].defaultValue
}

// Computed reports whether the default of p depends on the host.
func (p Property) Computed() bool {
	return p.valid() && propertyTable[p].computed
}

func (p Property) String() string {
	return p.Key()
}

// Table resolves default values. The host operating system is captured once
// when the table is created, so every build from the same table agrees on
// the computed defaults.
type Table struct {
	osName string
	family OSFamily
}

// NewTable returns a Table whose computed defaults follow osName.
func NewTable(osName string) *Table {
	return &Table{osName: osName, family: Classify(osName)}
}

// HostTable is the process-wide table for the running host.
var HostTable = NewTable(HostOSName())

// OSName returns the operating system name the table was created with.
func (t *Table) OSName() string {
	return t.osName
}

// Default returns the default value of p on this table's host.
func (t *Table) Default(p Property) string {
	if p == Implementation {
		return t.family.DefaultImplementation()
	}
	return p.DefaultValue()
}

// Lookup returns the raw value of p from values, falling back to the default.
func (t *Table) Lookup(values map[string]string, p Property) string {
	if v, ok := values[p.Key()]; ok {
		return v
	}
	if osName, ok := values[OSNameKey]; ok && p == Implementation {
		return Classify(osName).DefaultImplementation()
	}
	return t.Default(p)
}
