package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dulpromax/dulpromax-b2b/internal/config"
)

func TestInitWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := InitWithWriter(&config.Config{AppName: "test", LogLevel: "info"}, &buf)
	if err != nil {
		t.Fatalf("InitWithWriter: %v", err)
	}

	log.InfoObj("hello", "payload", map[string]any{"k": "v"})
	log.DebugObj("hidden", "payload", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line at info level, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "hello" || entry["app"] != "test" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %#v", entry)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "info" {
		t.Fatalf("parseLevel returned %s", got)
	}
	if got := parseLevel("warning"); got.String() != "warn" {
		t.Fatalf("parseLevel returned %s", got)
	}
}
