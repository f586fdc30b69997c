package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tablegen.yaml"), "tables:\n  - kind: autonym\n    input: a.tsv\n    output: tables.go\n    package: autonym\n")
	writeFile(t, filepath.Join(dir, "a.tsv"), "tag3\ttag1\tname\tautonym\tsource\neng\ten\tEnglish\tEnglish\tcldr\n")
	return filepath.Join(dir, "tablegen.yaml")
}

func TestRunGeneratesAndChecks(t *testing.T) {
	config := fixture(t)
	var stderr bytes.Buffer

	if code := run(context.Background(), []string{"--check", "--config", config}, &stderr); code != 1 {
		t.Fatalf("check before generation exited %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "stale") {
		t.Errorf("expected stale error, got %q", stderr.String())
	}

	stderr.Reset()
	if code := run(context.Background(), []string{"--config", config}, &stderr); code != 0 {
		t.Fatalf("generation exited %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "INFO [tablegen] wrote table") {
		t.Errorf("expected write log, got %q", stderr.String())
	}
	out, err := os.ReadFile(filepath.Join(filepath.Dir(config), "tables.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "// Code generated by iso639-tablegen from a.tsv. DO NOT EDIT.\n") {
		t.Errorf("unexpected header:\n%s", out)
	}

	stderr.Reset()
	if code := run(context.Background(), []string{"--check", "-v", "--config", config}, &stderr); code != 0 {
		t.Fatalf("check after generation exited %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "DEBUG [tablegen] generated table is up to date") {
		t.Errorf("expected debug log, got %q", stderr.String())
	}
}

func TestRunReportsBadData(t *testing.T) {
	config := fixture(t)
	writeFile(t, filepath.Join(filepath.Dir(config), "a.tsv"), "tag3\ttag1\tname\tautonym\tsource\nENG\ten\tEnglish\tEnglish\tcldr\n")
	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"--config", config}, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "a.tsv:2") {
		t.Errorf("expected line reference in %q", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(config), "tables.go")); !os.IsNotExist(err) {
		t.Errorf("tables.go written despite bad data")
	}
}

func TestRunMissingConfig(t *testing.T) {
	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "read manifest") {
		t.Errorf("unexpected error output %q", stderr.String())
	}
}
