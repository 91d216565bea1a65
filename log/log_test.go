package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.Level())
	}
	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}
	if logger.Format() != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.Format())
	}
}

func TestLogger_LogMethods_RespectLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true},
		{"trace at debug", Logger.Trace, LevelDebug, false},
		{"debug at debug", Logger.Debug, LevelDebug, true},
		{"debug at info", Logger.Debug, LevelInfo, false},
		{"info at info", Logger.Info, LevelInfo, true},
		{"info at warn", Logger.Info, LevelWarn, false},
		{"warn at warn", Logger.Warn, LevelWarn, true},
		{"warn at error", Logger.Warn, LevelError, false},
		{"error at error", Logger.Error, LevelError, true},
		{"error at debug", Logger.Error, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(Make(&buf, WithLevel(tt.minLevel)), "test message")

			if hasOutput := buf.Len() > 0; hasOutput != tt.logged {
				t.Errorf("expected logged=%v, got output length=%d", tt.logged, buf.Len())
			}
		})
	}
}

func TestLogger_JSON_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelTrace))
	logger.Trace("rolled", slog.String("die", "2d6+1"), slog.Int("sum", 9))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if entry["msg"] != "rolled" {
		t.Errorf("expected msg=rolled, got %v", entry["msg"])
	}
	if entry["level"] != "TRACE" {
		t.Errorf("expected level=TRACE, got %v", entry["level"])
	}
	if entry["die"] != "2d6+1" {
		t.Errorf("expected die=2d6+1, got %v", entry["die"])
	}
	if entry["sum"] != float64(9) {
		t.Errorf("expected sum=9, got %v", entry["sum"])
	}
}

func TestLogger_Text_Plain(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
	logger.Info("test message", slog.String("key", "value"))

	output := buf.String()
	if !strings.Contains(output, `msg="test message"`) {
		t.Errorf("expected quoted message, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected key=value, got: %s", output)
	}
}

func TestLogger_Text_Pretty(t *testing.T) {
	var buf bytes.Buffer

	// A bytes.Buffer is not a terminal, so styles render without escapes.
	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	).With(slog.String("component", "roll"))

	logger.Warn("test message",
		slog.Bool("painful", true),
		slog.Group("die", slog.Int("size", 20)),
	)

	want := "level=WARN msg=test message component=roll painful=true die.size=20\n"
	if got := buf.String(); got != want {
		t.Errorf("pretty output = %q, want %q", got, want)
	}
}

type valuer struct{}

func (valuer) LogValue() slog.Value {
	return slog.GroupValue(slog.String("error", "no dice supplied"))
}

func TestLogger_Text_Pretty_ResolvesLogValuer(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout(""))
	logger.Error("run failed", slog.Any("err", valuer{}))

	if !strings.Contains(buf.String(), "err.error=no dice supplied") {
		t.Errorf("expected resolved group, got: %s", buf.String())
	}
}

func TestLogger_Caller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true), WithFormat(FormatText), WithTimeLayout("none")).
		Info("with caller")

	if !strings.Contains(buf.String(), "log_test.go:") {
		t.Errorf("expected caller to reference this file, got: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false)).Info("without caller")

	if strings.Contains(buf.String(), "source") {
		t.Errorf("caller info included when disabled: %s", buf.String())
	}
}

func TestLogger_TimeLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   bool
	}{
		{"rfc3339 named", "RFC3339", true},
		{"kitchen named", "kitchen", true},
		{"custom", "2006", true},
		{"none", "none", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Make(&buf, WithTimeLayout(tt.layout)).Info("test")

			if got := strings.Contains(buf.String(), `"time"`); got != tt.want {
				t.Errorf("time present = %v, want %v: %s", got, tt.want, buf.String())
			}
		})
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var first, second bytes.Buffer

	base := Make(&first, WithLevel(LevelError))
	wrapped := base.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	base.Debug("dropped")
	wrapped.Debug("kept")

	if first.Len() != 0 {
		t.Errorf("base logger should drop debug messages: %s", first.String())
	}
	if !strings.Contains(second.String(), "kept") {
		t.Errorf("wrapped logger should log debug messages: %s", second.String())
	}
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var l Logger

	// Should not panic
	l.Trace("test")
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")

	if l.With(slog.String("key", "value")).Logger != nil {
		t.Error("expected nil logger from zero value With")
	}

	if l.Level() != DefaultLevel {
		t.Errorf("zero value level = %v, want %v", l.Level(), DefaultLevel)
	}

	var buf bytes.Buffer
	l.Wrap(WithOutput(&buf)).Info("from zero")

	if !strings.Contains(buf.String(), "from zero") {
		t.Error("expected Wrap on zero value to produce a usable logger")
	}
}

func TestLogger_ConcurrentCalls_ThreadSafe(t *testing.T) {
	var buf syncBuffer

	logger := Make(&buf, WithFormat(FormatText))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", id))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json":  FormatJSON,
		" Text": FormatText,
		"yaml":  DefaultFormat,
	} {
		if got := ParseFormat(in); got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelsAndFormats(t *testing.T) {
	var levels []string
	for l := range Levels() {
		levels = append(levels, l)
	}

	if got := strings.Join(levels, ","); got != "trace,debug,info,warn,error" {
		t.Errorf("Levels() = %s", got)
	}

	var formats []string
	for f := range Formats() {
		formats = append(formats, f)
	}

	if got := strings.Join(formats, ","); got != "json,text" {
		t.Errorf("Formats() = %s", got)
	}
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	}()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelDebug), WithFormat(FormatJSON))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("package message", slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, "package message") {
				t.Errorf("expected message, got: %s", output)
			}
			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("expected level %q, got: %s", tt.level, output)
			}
			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_With_UsesDefaultLogger(t *testing.T) {
	original := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	}()

	var buf bytes.Buffer
	Config(WithOutput(&buf))

	With(slog.String("scope", "test")).Info("scoped", slog.Any("err", errors.New("boom")))

	if !strings.Contains(buf.String(), `"scope":"test"`) {
		t.Errorf("expected scope attribute, got: %s", buf.String())
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent writers that bypass the
// handler lock (the stdlib text handler serializes writes on its own).
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
