package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNopBeforeInit(t *testing.T) {
	// Logging before Init must not panic.
	Debug("debug before init")
	Info("info before init")
	Warn("warn before init")
	Error("error before init")
	Sync()
}

func TestFileOutput(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	err := InitWithOptions(Options{Level: "debug", File: logFile, Console: false})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("file output works")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "file output works") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	err := InitWithOptions(Options{Level: "warn", File: logFile, Console: false})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Debug("dropped message")
	Warn("kept message")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if strings.Contains(string(data), "dropped message") {
		t.Error("debug message should have been filtered at warn level")
	}
	if !strings.Contains(string(data), "kept message") {
		t.Error("warn message missing from log file")
	}
}
