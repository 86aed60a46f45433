package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jcgay/maven-notifier/internal/conf"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"notifier-config"}, args...))
	return stdout.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), conf.FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestResolveAction(t *testing.T) {
	path := writeConfig(t, "notifier.implementation=growl\nnotifier.growl.host=10.0.0.2\n")

	tests := []struct {
		name     string
		env      string
		args     []string
		expected string
	}{
		{
			name:     "file value",
			args:     []string{"--config", path, "--os-name", "Linux", "--format", "json"},
			expected: "growl",
		},
		{
			name:     "flag override",
			args:     []string{"--config", path, "--os-name", "Linux", "--notify-with", "pushbullet", "--format", "json"},
			expected: "pushbullet",
		},
		{
			name:     "environment override",
			env:      "snarl",
			args:     []string{"--config", path, "--os-name", "Linux", "--format", "json"},
			expected: "snarl",
		},
		{
			name:     "missing file on mac",
			args:     []string{"--config", filepath.Join(t.TempDir(), "missing"), "--os-name", "Mac OS X", "--format", "json"},
			expected: "growl",
		},
		{
			name:     "missing file on linux",
			args:     []string{"--config", filepath.Join(t.TempDir(), "missing"), "--os-name", "Linux", "--format", "json"},
			expected: "notifysend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(conf.NotifyWithKey, tt.env)
			}

			out, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got conf.Config
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("failed to decode output %q: %v", out, err)
			}
			if got.Implementation != tt.expected {
				t.Errorf("implementation = %q, want %q", got.Implementation, tt.expected)
			}
		})
	}
}

func TestResolveAction_Properties(t *testing.T) {
	path := writeConfig(t, "notifier.message.short=TRUE\n")

	out, err := runApp(t, "--config", path, "--os-name", "Linux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"notifier.implementation = notifysend",
		"notifier.notify-send.path = notify-send",
		"notifier.notify-send.timeout = 2000",
		"notifier.notification-center.path = terminal-notifier",
		"notifier.notification-center.activate = com.apple.Terminal",
		"notifier.growl.port = 23053",
		"notifier.system-tray.wait = 2000",
		"notifier.snarl.port = 9887",
		"notifier.snarl.host = localhost",
		"notifier.message.short = true",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAction_Errors(t *testing.T) {
	path := writeConfig(t, "notifier.growl.port=not-a-number\n")

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "invalid number",
			args: []string{"--config", path},
		},
		{
			name: "unsupported format",
			args: []string{"--config", writeConfig(t, ""), "--format", "xml"},
		},
		{
			name: "invalid log level",
			args: []string{"--log-level", "loud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestKeysAction(t *testing.T) {
	out, err := runApp(t, "--os-name", "Windows 10", "keys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range conf.Properties() {
		if !strings.Contains(out, p.Key()) {
			t.Errorf("output misses %s:\n%s", p.Key(), out)
		}
	}
	if !strings.Contains(out, "growl (computed for Windows 10)") {
		t.Errorf("output misses computed default:\n%s", out)
	}
	if !strings.Contains(out, "(unset)") {
		t.Errorf("output misses unset defaults:\n%s", out)
	}
}
