package conf

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the resolved notifier configuration. It is built once per
// resolution and not modified afterwards. Empty optional strings mean
// "unset".
type Config struct {
	Implementation                string `json:"implementation" toml:"implementation" yaml:"implementation"`
	NotifySendPath                string `json:"notifySendPath" toml:"notifySendPath" yaml:"notifySendPath"`
	NotifySendTimeoutMillis       int64  `json:"notifySendTimeoutMillis" toml:"notifySendTimeoutMillis" yaml:"notifySendTimeoutMillis"`
	NotificationCenterPath        string `json:"notificationCenterPath" toml:"notificationCenterPath" yaml:"notificationCenterPath"`
	NotificationCenterActivate    string `json:"notificationCenterActivate" toml:"notificationCenterActivate" yaml:"notificationCenterActivate"`
	NotificationCenterSound       string `json:"notificationCenterSound,omitempty" toml:"notificationCenterSound,omitempty" yaml:"notificationCenterSound,omitempty"`
	GrowlHost                     string `json:"growlHost,omitempty" toml:"growlHost,omitempty" yaml:"growlHost,omitempty"`
	GrowlPort                     int    `json:"growlPort" toml:"growlPort" yaml:"growlPort"`
	GrowlPassword                 string `json:"growlPassword,omitempty" toml:"growlPassword,omitempty" yaml:"growlPassword,omitempty"`
	SystemTrayWaitBeforeEndMillis int64  `json:"systemTrayWaitBeforeEndMillis" toml:"systemTrayWaitBeforeEndMillis" yaml:"systemTrayWaitBeforeEndMillis"`
	SnarlHost                     string `json:"snarlHost" toml:"snarlHost" yaml:"snarlHost"`
	SnarlPort                     int    `json:"snarlPort" toml:"snarlPort" yaml:"snarlPort"`
	SnarlPassword                 string `json:"snarlPassword,omitempty" toml:"snarlPassword,omitempty" yaml:"snarlPassword,omitempty"`
	ShortDescription              bool   `json:"shortDescription" toml:"shortDescription" yaml:"shortDescription"`
	PushbulletAPIKey              string `json:"pushbulletApiKey,omitempty" toml:"pushbulletApiKey,omitempty" yaml:"pushbulletApiKey,omitempty"`
	PushbulletDevice              string `json:"pushbulletDevice,omitempty" toml:"pushbulletDevice,omitempty" yaml:"pushbulletDevice,omitempty"`
}

// ValueError reports a property whose value cannot be converted to its type.
type ValueError struct {
	Property Property
	Value    string
	Err      error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Property.Key(), e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Build converts values into a Config using the host table.
func Build(values map[string]string) (Config, error) {
	return HostTable.Build(values)
}

// Build converts values into a Config. Keys missing from values take their
// default from t. An empty or nil map yields the default configuration.
//
// A numeric value that does not parse, or that is out of range, fails the
// build. Booleans never fail: only a case-insensitive "true" is true.
func (t *Table) Build(values map[string]string) (Config, error) {
	b := &builder{table: t, values: values}

	config := Config{
		Implementation:                b.str(Implementation),
		NotifySendPath:                b.str(NotifySendPath),
		NotifySendTimeoutMillis:       b.long(NotifySendTimeout),
		NotificationCenterPath:        b.str(NotificationCenterPath),
		NotificationCenterActivate:    b.str(NotificationCenterActivate),
		NotificationCenterSound:       b.str(NotificationCenterSound),
		GrowlHost:                     b.str(GrowlHost),
		GrowlPort:                     b.integer(GrowlPort),
		GrowlPassword:                 b.str(GrowlPassword),
		SystemTrayWaitBeforeEndMillis: b.long(SystemTrayWait),
		SnarlHost:                     b.str(SnarlHost),
		SnarlPort:                     b.integer(SnarlPort),
		SnarlPassword:                 b.str(SnarlPassword),
		ShortDescription:              b.boolean(ShortDescription),
		PushbulletAPIKey:              b.str(PushbulletAPIKey),
		PushbulletDevice:              b.str(PushbulletDevice),
	}
	if b.err != nil {
		return Config{}, b.err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// builder keeps the first conversion error so Build reads as a flat list.
type builder struct {
	table  *Table
	values map[string]string
	err    error
}

func (b *builder) str(p Property) string {
	return b.table.Lookup(b.values, p)
}

func (b *builder) parseInt(p Property, bitSize int) int64 {
	raw := b.table.Lookup(b.values, p)
	n, err := strconv.ParseInt(strings.TrimLeft(raw, " \t\f"), 10, bitSize)
	if err != nil && b.err == nil {
		b.err = &ValueError{Property: p, Value: raw, Err: err}
	}
	return n
}

func (b *builder) integer(p Property) int {
	return int(b.parseInt(p, 32))
}

func (b *builder) long(p Property) int64 {
	return b.parseInt(p, 64)
}

func (b *builder) boolean(p Property) bool {
	return strings.EqualFold(b.table.Lookup(b.values, p), "true")
}

// Validate checks the ranges of the numeric settings.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.NotifySendTimeoutMillis, validation.Min(int64(0))),
		validation.Field(&c.GrowlPort, validation.Min(0), validation.Max(65535)),
		validation.Field(&c.SystemTrayWaitBeforeEndMillis, validation.Min(int64(0))),
		validation.Field(&c.SnarlPort, validation.Min(0), validation.Max(65535)),
	)
}

// NotifySendTimeout returns the notify-send expiration time.
func (c Config) NotifySendTimeout() time.Duration {
	return time.Duration(c.NotifySendTimeoutMillis) * time.Millisecond
}

// SystemTrayWait returns how long the system tray icon stays before exit.
func (c Config) SystemTrayWait() time.Duration {
	return time.Duration(c.SystemTrayWaitBeforeEndMillis) * time.Millisecond
}

// GrowlAddress returns the host:port of the Growl server. An unset host
// means the local machine.
func (c Config) GrowlAddress() string {
	host := c.GrowlHost
	if host == "" {
		host = "localhost"
	}
	return net.JoinHostPort(host, strconv.Itoa(c.GrowlPort))
}

// SnarlAddress returns the host:port of the Snarl server.
func (c Config) SnarlAddress() string {
	return net.JoinHostPort(c.SnarlHost, strconv.Itoa(c.SnarlPort))
}

// Values renders c back to properties file keys. Unset optional strings are
// left out; an empty value that would otherwise read back as a default is
// kept.
func (c Config) Values() map[string]string {
	values := map[string]string{
		Implementation.Key():             c.Implementation,
		NotifySendPath.Key():             c.NotifySendPath,
		NotifySendTimeout.Key():          strconv.FormatInt(c.NotifySendTimeoutMillis, 10),
		NotificationCenterPath.Key():     c.NotificationCenterPath,
		NotificationCenterActivate.Key(): c.NotificationCenterActivate,
		NotificationCenterSound.Key():    c.NotificationCenterSound,
		GrowlHost.Key():                  c.GrowlHost,
		GrowlPort.Key():                  strconv.Itoa(c.GrowlPort),
		GrowlPassword.Key():              c.GrowlPassword,
		SystemTrayWait.Key():             strconv.FormatInt(c.SystemTrayWaitBeforeEndMillis, 10),
		SnarlHost.Key():                  c.SnarlHost,
		SnarlPort.Key():                  strconv.Itoa(c.SnarlPort),
		SnarlPassword.Key():              c.SnarlPassword,
		ShortDescription.Key():           strconv.FormatBool(c.ShortDescription),
		PushbulletAPIKey.Key():           c.PushbulletAPIKey,
		PushbulletDevice.Key():           c.PushbulletDevice,
	}
	for _, p := range Properties() {
		if values[p.Key()] == "" && p.DefaultValue() == "" && !p.Computed() {
			delete(values, p.Key())
		}
	}
	return values
}

// Redacted returns a copy of c with passwords and API keys masked.
func (c Config) Redacted() Config {
	c.GrowlPassword = redact(c.GrowlPassword)
	c.SnarlPassword = redact(c.SnarlPassword)
	c.PushbulletAPIKey = redact(c.PushbulletAPIKey)
	return c
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

// LogValue implements slog.LogValuer. Secrets are masked.
func (c Config) LogValue() slog.Value {
	r := c.Redacted()
	return slog.GroupValue(
		slog.String("implementation", r.Implementation),
		slog.String("notifySendPath", r.NotifySendPath),
		slog.Int64("notifySendTimeoutMillis", r.NotifySendTimeoutMillis),
		slog.String("notificationCenterPath", r.NotificationCenterPath),
		slog.String("notificationCenterActivate", r.NotificationCenterActivate),
		slog.String("notificationCenterSound", r.NotificationCenterSound),
		slog.String("growlHost", r.GrowlHost),
		slog.Int("growlPort", r.GrowlPort),
		slog.String("growlPassword", r.GrowlPassword),
		slog.Int64("systemTrayWaitBeforeEndMillis", r.SystemTrayWaitBeforeEndMillis),
		slog.String("snarlHost", r.SnarlHost),
		slog.Int("snarlPort", r.SnarlPort),
		slog.String("snarlPassword", r.SnarlPassword),
		slog.Bool("shortDescription", r.ShortDescription),
		slog.String("pushbulletApiKey", r.PushbulletAPIKey),
		slog.String("pushbulletDevice", r.PushbulletDevice),
	)
}
