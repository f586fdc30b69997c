package tablegen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nupi-ai/iso639/internal/logging"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const fixtureManifest = `
tables:
  - kind: autonym
    input: autonyms.tsv
    output: out/autonym.go
    package: autonym
  - kind: script
    input: scripts.tsv
    output: out/script.go
    package: script
  - kind: lcid
    input: lcids.tsv
    output: out/lcid.go
    package: lcid
`

func newFixture(t *testing.T) *Manifest {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "out"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFixture(t, dir, "tablegen.yaml", fixtureManifest)
	writeFixture(t, dir, "autonyms.tsv", autonymTSV)
	writeFixture(t, dir, "scripts.tsv", "tag3\ttag1\tscript\tname\tsource\neng\ten\tLatn\tLatin\tcldr\n")
	writeFixture(t, dir, "lcids.tsv", "tag3\ttag1\tscript\tregion\tlcid\neng\ten\t\tUS\t1033\neng\ten\t\t\t9\n")
	m, err := LoadManifest(filepath.Join(dir, "tablegen.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	return m
}

func TestRunWritesTables(t *testing.T) {
	m := newFixture(t)
	var logs bytes.Buffer
	g := New(logging.Named(logging.New(&logs, false), "tablegen"))
	if err := g.Run(context.Background(), m, Options{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(m.Dir, "out", "lcid.go"))
	if err != nil {
		t.Fatal(err)
	}
	want := `// Code generated by iso639-tablegen from lcids.tsv. DO NOT EDIT.

package lcid

// records holds 2 entries ordered by (Tag3, Script, Region).
var records = [...]Record{
	{Tag3: "eng", Tag1: "en", LCID: 0x0009},
	{Tag3: "eng", Tag1: "en", Region: "US", LCID: 0x0409},
}

// byValue holds positions in records ordered by LCID.
var byValue = [...]uint16{
	0, 1,
}
`
	if string(got) != want {
		t.Errorf("lcid table:\n%s\nwant:\n%s", got, want)
	}

	got, err = os.ReadFile(filepath.Join(m.Dir, "out", "autonym.go"))
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"package autonym\n",
		`	{Tag3: "ave", Tag1: "ae", Name: "Avestan", Source: "wikipedia"},` + "\n",
		`	{Tag3: "haw", Name: "Hawaiian", Autonym: "ʻŌlelo Hawaiʻi", Source: "wikipedia"},` + "\n",
		`	{"ae", 0},` + "\n",
		`	{"eng", 2},` + "\n",
	} {
		if !strings.Contains(string(got), line) {
			t.Errorf("autonym table missing %q", line)
		}
	}

	if !strings.Contains(logs.String(), "INFO [tablegen] wrote table") {
		t.Errorf("expected write to be logged, got %q", logs.String())
	}

	entries, _ := os.ReadDir(filepath.Join(m.Dir, "out"))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tablegen.tmp.") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestRunCheckMode(t *testing.T) {
	m := newFixture(t)
	g := New(nil)
	err := g.Run(context.Background(), m, Options{Check: true})
	if !errors.Is(err, ErrStale) {
		t.Fatalf("check before generation: error = %v, want ErrStale", err)
	}
	if _, statErr := os.Stat(filepath.Join(m.Dir, "out", "lcid.go")); !os.IsNotExist(statErr) {
		t.Fatalf("check mode wrote a file")
	}

	if err := g.Run(context.Background(), m, Options{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if err := g.Run(context.Background(), m, Options{Check: true}); err != nil {
		t.Fatalf("check after generation returned error: %v", err)
	}

	writeFixture(t, m.Dir, "lcids.tsv", "tag3\ttag1\tscript\tregion\tlcid\neng\ten\t\tUS\t1033\n")
	if err := g.Run(context.Background(), m, Options{Check: true}); !errors.Is(err, ErrStale) {
		t.Fatalf("check after data change: error = %v, want ErrStale", err)
	}
}

func TestRunFailsWithoutPartialOutput(t *testing.T) {
	m := newFixture(t)
	writeFixture(t, m.Dir, "lcids.tsv", "tag3\ttag1\tscript\tregion\tlcid\nfra\tfr\t\tFR\t1036\n")
	err := New(nil).Run(context.Background(), m, Options{})
	if err == nil || !strings.Contains(err.Error(), "fra is not in autonyms.tsv") {
		t.Fatalf("Run error = %v, want cross-check failure", err)
	}
	entries, _ := os.ReadDir(filepath.Join(m.Dir, "out"))
	if len(entries) != 0 {
		t.Errorf("expected no output after failure, found %d files", len(entries))
	}
}

func TestRunWriteFailureKeepsPreviousTables(t *testing.T) {
	m := newFixture(t)
	g := New(nil)
	if err := g.Run(context.Background(), m, Options{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	outDir := filepath.Join(m.Dir, "out")
	before, err := os.ReadFile(filepath.Join(outDir, "autonym.go"))
	if err != nil {
		t.Fatal(err)
	}

	// The autonym table changes, but the lcid table cannot be written.
	writeFixture(t, m.Dir, "autonyms.tsv", autonymTSV+"fra\tfr\tFrench\tfrançais\tcldr\n")
	m.Tables[2].Output = "missing/lcid.go"
	err = g.Run(context.Background(), m, Options{})
	if err == nil || !strings.Contains(err.Error(), "create temp for") {
		t.Fatalf("Run error = %v, want temp file failure", err)
	}

	after, err := os.ReadFile(filepath.Join(outDir, "autonym.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("autonym table replaced although the run failed")
	}
	entries, _ := os.ReadDir(outDir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tablegen.tmp.") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	m := newFixture(t)
	os.Remove(filepath.Join(m.Dir, "scripts.tsv"))
	err := New(nil).Run(context.Background(), m, Options{})
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Run error = %v, want not-exist", err)
	}
}

func TestRunCancelled(t *testing.T) {
	m := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(nil).Run(ctx, m, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"invalid yaml", "tables: [", "invalid YAML"},
		{"empty", "tables: []", "no tables"},
		{"unknown kind", "tables:\n  - {kind: names, input: a, output: b, package: c}", `unknown kind "names"`},
		{"missing output", "tables:\n  - {kind: autonym, input: a, package: c}", "required"},
		{"duplicate kind", "tables:\n  - {kind: script, input: a, output: b, package: c}\n  - {kind: script, input: d, output: e, package: f}", "listed twice"},
		{"lcid alone", "tables:\n  - {kind: lcid, input: a, output: b, package: c}", "requires the autonym table"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tc.in))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ParseManifest error = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}

// TestCommittedTablesUpToDate regenerates the real tables in check mode, so a
// data edit without `go generate` fails here.
func TestCommittedTablesUpToDate(t *testing.T) {
	m, err := LoadManifest(filepath.Join("..", "..", "data", "tablegen.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if err := New(nil).Run(context.Background(), m, Options{Check: true}); err != nil {
		t.Fatalf("generated tables are stale, run go generate ./autonym: %v", err)
	}
}
