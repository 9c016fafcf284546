package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rs/zerolog"
)

// entries decodes every JSON line written to buf.
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("step", "local"), "step", "local"},
		{"Int", Int("n", 10), "n", 10},
		{"Uint64", Uint64("number", 7), "number", uint64(7)},
		{"Float64", Float64("iterative", 2.5), "iterative", 2.5},
		{"Bool", Bool("fail_local", true), "fail_local", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("%s() = %+v, want {%s %v}", tt.name, tt.field, tt.key, tt.value)
			}
		})
	}

	t.Run("Err uses the error key", func(t *testing.T) {
		cause := errors.New("local computation failed")
		if f := Err(cause); f.Key != "error" || f.Value != cause {
			t.Errorf("Err() = %+v", f)
		}
	})
}

func TestNewLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "snippets").Info("run started")

	got := entries(t, &buf)
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if got[0]["component"] != "snippets" || got[0]["message"] != "run started" {
		t.Errorf("unexpected entry: %v", got[0])
	}
	if _, ok := got[0]["time"]; !ok {
		t.Error("entries should carry a timestamp")
	}
}

func TestZerologAdapter_StepFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "snippets")

	logger.Info("step reported error",
		String("step", "parse"),
		String("kind", "parse"),
		Uint64("number", 7),
		Float64("functional", 1.5),
		Bool("fail_library", false),
		Int("n", 3),
	)

	entry := entries(t, &buf)[0]
	want := map[string]any{
		"level":        "info",
		"step":         "parse",
		"kind":         "parse",
		"number":       float64(7),
		"functional":   1.5,
		"fail_library": false,
		"n":            float64(3),
	}
	for key, value := range want {
		if entry[key] != value {
			t.Errorf("%s = %v, want %v", key, entry[key], value)
		}
	}
}

func TestZerologAdapter_ErrorWithLibraryError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "snippets")

	lib := goerr.New("library computation failed", goerr.V("int_sum", 15))
	logger.Error("gather metrics", lib, String("step", "library"))

	entry := entries(t, &buf)[0]
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
	if entry["error"] != "library computation failed" {
		t.Errorf("error = %v, want the goerr message", entry["error"])
	}
	if entry["step"] != "library" {
		t.Errorf("step = %v, want library", entry["step"])
	}
}

func TestZerologAdapter_ErrField(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "snippets").Warn("unclassified error", Err(errors.New("boom")))

	entry := entries(t, &buf)[0]
	if entry["level"] != "warn" || entry["error"] != "boom" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestZerologAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, "snippets")
	child := base.With(String("run_id", "run-1"))

	child.Debug("series computed", Int("n", 10))
	child.Info("step reported error", String("step", "local"))
	base.Info("without run id")

	got := entries(t, &buf)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for _, entry := range got[:2] {
		if entry["run_id"] != "run-1" {
			t.Errorf("child entry without run_id: %v", entry)
		}
	}
	if _, ok := got[2]["run_id"]; ok {
		t.Error("With must not modify the parent logger")
	}
}

func TestNewLevelLogger(t *testing.T) {
	t.Run("warn hides reported step errors", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLevelLogger(&buf, "snippets", "warn")
		if err != nil {
			t.Fatalf("NewLevelLogger: %v", err)
		}
		logger.Debug("step started", String("step", "series"))
		logger.Info("step reported error", String("step", "local"))
		logger.Warn("unclassified error", String("step", "parse"))

		got := entries(t, &buf)
		if len(got) != 1 || got[0]["message"] != "unclassified error" {
			t.Errorf("expected only the warn entry, got %v", got)
		}
	})

	t.Run("debug shows everything", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLevelLogger(&buf, "snippets", "debug")
		if err != nil {
			t.Fatalf("NewLevelLogger: %v", err)
		}
		logger.Debug("step started")
		logger.Info("step reported error")
		if got := len(entries(t, &buf)); got != 2 {
			t.Errorf("expected 2 entries, got %d", got)
		}
	})

	t.Run("empty level means info", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLevelLogger(&buf, "snippets", "")
		if err != nil {
			t.Fatalf("NewLevelLogger: %v", err)
		}
		logger.Debug("step started")
		logger.Info("step reported error")
		if got := len(entries(t, &buf)); got != 1 {
			t.Errorf("expected 1 entry, got %d", got)
		}
	})

	t.Run("unknown level is an error", func(t *testing.T) {
		if _, err := NewLevelLogger(&bytes.Buffer{}, "snippets", "loud"); err == nil {
			t.Error("expected an error for level \"loud\"")
		}
	})
}

func TestNewZerologAdapter_KeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	logger.Warn("unclassified error")
	logger.Error("gather metrics", errors.New("collector failed"))

	got := entries(t, &buf)
	if len(got) != 1 || got[0]["error"] != "collector failed" {
		t.Errorf("expected only the error entry, got %v", got)
	}
}

func TestNop(t *testing.T) {
	var _ Logger = Nop()
	logger := Nop().With(String("run_id", "run-1"))
	logger.Info("step reported error")
	logger.Error("gather metrics", errors.New("ignored"))
}
