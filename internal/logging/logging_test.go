package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "panesync.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONOnlyWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("split.divider", map[string]interface{}{"position": 12})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", data, err)
	}
	if entry.Event != "split.divider" || entry.Payload["position"] != float64(12) {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("boom"))
	Error(nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Count(string(data), "boom") != 1 {
		t.Fatalf("expected a single error line, got %q", data)
	}
}

func TestConfigureBlankFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
