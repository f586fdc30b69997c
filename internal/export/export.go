// Package export dumps the compiled language registries as JSON, TSV or a
// SQLite database.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/lcid"
	"github.com/nupi-ai/iso639/script"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatTSV    Format = "tsv"
	FormatSQLite Format = "sqlite"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatTSV, FormatSQLite}

// Table selects one registry. The empty Table means all of them.
type Table string

const (
	TableAll     Table = ""
	TableAutonym Table = "autonym"
	TableScript  Table = "script"
	TableLCID    Table = "lcid"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("export: unknown format %q (want json, tsv or sqlite)", s)
	}
	return f, nil
}

// ParseTable validates a user supplied table name.
func ParseTable(s string) (Table, error) {
	switch t := Table(strings.ToLower(strings.TrimSpace(s))); t {
	case TableAll, TableAutonym, TableScript, TableLCID:
		return t, nil
	default:
		return "", fmt.Errorf("export: unknown table %q (want autonym, script or lcid)", s)
	}
}

// Dataset is a snapshot of the three registries.
type Dataset struct {
	Autonyms []autonym.Record `json:"autonyms,omitempty"`
	Scripts  []script.Record  `json:"scripts,omitempty"`
	LCIDs    []lcid.Record    `json:"lcids,omitempty"`
}

// Load copies the registries selected by t.
func Load(t Table) Dataset {
	var d Dataset
	if t == TableAll || t == TableAutonym {
		d.Autonyms = autonym.All()
	}
	if t == TableAll || t == TableScript {
		d.Scripts = script.All()
	}
	if t == TableAll || t == TableLCID {
		d.LCIDs = lcid.All()
	}
	return d
}

// WriteJSON writes d as one indented JSON document.
func WriteJSON(w io.Writer, d Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}
