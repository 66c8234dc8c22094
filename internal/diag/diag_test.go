package diag

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, " warn ": slog.LevelWarn,
		"error": slog.LevelError, "": slog.LevelInfo, "chatty": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	log, id := NewLogger(&buf, "info")
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", id, err)
	}
	log.Debug("hidden")
	log.Info("file done", "records", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record leaked at info level: %s", out)
	}
	if !strings.Contains(out, "run_id="+id) || !strings.Contains(out, "records=3") {
		t.Errorf("missing attrs: %s", out)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing") // must not panic
}
