package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/wasteland/config"
)

// writeConfig writes a config that logs to stderr and returns its path.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wasteland.yaml")
	content := "log:\n  level: INFO\n  stderr_enabled: true\n" + extra
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_SessionEndedLogsFinalTotals(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	var stdout, stderr bytes.Buffer
	input := strings.NewReader("interact Sword\nlook\ninventory\nexit\n")

	code := run([]string{"--plain", "--config", writeConfig(t, "")}, input, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}

	logs := stderr.String()
	if !strings.Contains(logs, `msg="session started"`) {
		t.Errorf("missing session start in:\n%s", logs)
	}
	if !strings.Contains(logs, `msg="session ended" turns=3 defeated=false`) {
		t.Errorf("session end must report the played turns, got:\n%s", logs)
	}
	if !strings.Contains(logs, `world_version=1.0`) {
		t.Errorf("expected world version in the start record, got:\n%s", logs)
	}
	if !strings.HasSuffix(stdout.String(), "Thanks for playing!\n") {
		t.Errorf("expected farewell, got:\n%s", stdout.String())
	}
}

func TestRun_SessionEndedAfterCombat(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	var stdout, stderr bytes.Buffer
	input := strings.NewReader(strings.Repeat("attack Jane\n", 20))
	cfg := writeConfig(t, "combat:\n  npc_attack_from_damage: true\n")

	code := run([]string{"--plain", "--config", cfg}, input, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	// Jane falls on the 8th strike after seven retaliations of 8.
	if !strings.Contains(stdout.String(), "Jane has been defeated!") {
		t.Errorf("expected Jane defeated, got:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), `msg="session ended" turns=20 defeated=false`) {
		t.Errorf("expected combat totals, got:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), `msg="npc defeated"`) {
		t.Errorf("expected the defeat to be logged, got:\n%s", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "wasteland dev") {
		t.Errorf("unexpected version line %q", stdout.String())
	}
}

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--fast"}, "unknown argument"},
		{"missing script path", []string{"--script"}, "--script requires a file path"},
		{"missing config path", []string{"--config"}, "--config requires a file path"},
		{"bad config", []string{"--config", writeConfig(t, "ui:\n  history_size: -1\n")}, "Error loading config"},
		{"missing script", []string{"--script", "/nonexistent/script.txt"}, "Error opening script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			if code != 1 {
				t.Errorf("expected exit code 1, got %d", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr %q does not mention %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestRun_ScriptLogsSessionEnd(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	script := filepath.Join(t.TempDir(), "play.txt")
	if err := os.WriteFile(script, []byte("# pick up\ninteract Shield\nexit\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer

	code := run([]string{"--script", script, "--config", writeConfig(t, "")}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout.String(), "> interact Shield\nYou picked up a Shield.") {
		t.Errorf("expected echoed script, got:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), `msg="session ended" turns=1 defeated=false`) {
		t.Errorf("expected script totals, got:\n%s", stderr.String())
	}
}
