package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.json")
	outputPath := filepath.Join(dir, "output.td")

	input := `{
		"ADD32rr": {
			"SchedReads": [],
			"SchedWrites": [{"Type": "SchedWrite", "Name": "WriteALU"}],
			"Port": [[1, [0, 1]]],
			"Latency": 1,
			"Uops": 1
		}
	}`
	if err := os.WriteFile(inputPath, []byte(input), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run("skylake", inputPath, "", outputPath, "", false, logger); err != nil {
		t.Fatalf("run: %v", err)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile output: %v", err)
	}
	if !strings.Contains(string(out), "WriteALU") {
		t.Errorf("output missing WriteALU declaration:\n%s", out)
	}
}

func TestRunRejectsUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.json")
	if err := os.WriteFile(inputPath, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	err := run("bogus-cpu", inputPath, "", "-", "", false, logger)
	if err == nil {
		t.Fatalf("expected an error for an unknown target cpu")
	}
}

func TestRunRequiresTargetAndInput(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run("", "x.json", "", "-", "", false, logger); err == nil {
		t.Errorf("expected an error for a missing -target")
	}
	if err := run("skylake", "", "", "-", "", false, logger); err == nil {
		t.Errorf("expected an error for a missing -input")
	}
}
