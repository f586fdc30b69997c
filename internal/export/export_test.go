package export

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/lcid"
	"github.com/nupi-ai/iso639/script"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TSV", FormatTSV, false},
		{" sqlite ", FormatSQLite, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	for _, in := range []string{"", "autonym", "Script", "lcid"} {
		if _, err := ParseTable(in); err != nil {
			t.Errorf("ParseTable(%q) returned error: %v", in, err)
		}
	}
	if _, err := ParseTable("names"); err == nil {
		t.Error("ParseTable(names) succeeded")
	}
}

func TestLoadSelectsTables(t *testing.T) {
	all := Load(TableAll)
	if len(all.Autonyms) != len(autonym.All()) || len(all.Scripts) != len(script.All()) || len(all.LCIDs) != len(lcid.All()) {
		t.Fatalf("Load(TableAll) returned %d/%d/%d records", len(all.Autonyms), len(all.Scripts), len(all.LCIDs))
	}
	only := Load(TableLCID)
	if only.Autonyms != nil || only.Scripts != nil || len(only.LCIDs) == 0 {
		t.Errorf("Load(TableLCID) returned unexpected tables")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Load(TableAutonym)); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	var decoded struct {
		Autonyms []autonym.Record `json:"autonyms"`
		LCIDs    []lcid.Record    `json:"lcids"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Autonyms) != len(autonym.All()) {
		t.Errorf("decoded %d autonyms, want %d", len(decoded.Autonyms), len(autonym.All()))
	}
	if decoded.LCIDs != nil {
		t.Errorf("lcids present in autonym-only export")
	}
	if strings.Contains(buf.String(), `"lcids"`) {
		t.Errorf("empty table should be omitted")
	}
}

func readTSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = '\t'
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid TSV: %v", err)
	}
	return rows
}

func TestWriteTSV(t *testing.T) {
	d := Load(TableAll)
	tests := []struct {
		table  Table
		header string
		rows   int
	}{
		{TableAutonym, "tag3 tag1 name autonym source", len(d.Autonyms)},
		{TableScript, "tag3 tag1 script name source", len(d.Scripts)},
		{TableLCID, "tag3 tag1 script region lcid", len(d.LCIDs)},
	}
	for _, tt := range tests {
		t.Run(string(tt.table), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteTSV(&buf, d, tt.table); err != nil {
				t.Fatalf("WriteTSV returned error: %v", err)
			}
			rows := readTSV(t, buf.Bytes())
			if got := strings.Join(rows[0], " "); got != tt.header {
				t.Errorf("header = %q, want %q", got, tt.header)
			}
			if len(rows)-1 != tt.rows {
				t.Errorf("wrote %d rows, want %d", len(rows)-1, tt.rows)
			}
		})
	}
}

func TestWriteTSVValues(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, Load(TableLCID), TableLCID); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "eng\ten\t\tUS\t1033\n") {
		t.Errorf("en-US row missing from lcid export")
	}

	buf.Reset()
	if err := WriteTSV(&buf, Load(TableScript), TableScript); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "jpn\tja\tJpan\tJapanese\t") {
		t.Errorf("Japanese row missing from script export")
	}
}

func TestWriteTSVNeedsTable(t *testing.T) {
	if err := WriteTSV(&bytes.Buffer{}, Load(TableAll), TableAll); err == nil {
		t.Fatal("expected error for tsv export without a table")
	}
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iso639.db")
	d := Load(TableAll)
	if err := WriteSQLite(context.Background(), path, d, "1.2.3"); err != nil {
		t.Fatalf("WriteSQLite returned error: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	counts := map[string]int{
		"languages":       len(d.Autonyms),
		"default_scripts": len(d.Scripts),
		"lcids":           len(d.LCIDs),
	}
	for table, want := range counts {
		var got int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s has %d rows, want %d", table, got, want)
		}
	}

	var value int64
	err = db.QueryRow(`SELECT l.lcid FROM lcids l JOIN languages g ON g.tag3 = l.tag3
		WHERE g.tag1 = 'en' AND l.script = '' AND l.region = 'US'`).Scan(&value)
	if err != nil {
		t.Fatalf("query en-US: %v", err)
	}
	if value != 1033 {
		t.Errorf("en-US lcid = %d, want 1033", value)
	}

	var autonymValue sql.NullString
	if err := db.QueryRow(`SELECT autonym FROM languages WHERE tag3 = 'ave'`).Scan(&autonymValue); err != nil {
		t.Fatal(err)
	}
	if autonymValue.Valid {
		t.Errorf("absent autonym stored as %q, want NULL", autonymValue.String)
	}

	var v string
	if err := db.QueryRow(`SELECT value FROM metadata WHERE key = 'version'`).Scan(&v); err != nil {
		t.Fatal(err)
	}
	if v != "1.2.3" {
		t.Errorf("metadata version = %q, want 1.2.3", v)
	}
}

func TestWriteSQLiteReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iso639.db")
	if err := os.WriteFile(path, []byte("not a database"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteSQLite(context.Background(), path, Load(TableAll), "dev"); err != nil {
		t.Fatalf("WriteSQLite returned error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the database, found %v", names)
	}
}

func TestWriteSQLiteRejectsDanglingReferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iso639.db")
	err := WriteSQLite(context.Background(), path, Load(TableLCID), "dev")
	if err == nil {
		t.Fatal("expected foreign key failure for lcids without languages")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("database written despite failure")
	}
}
