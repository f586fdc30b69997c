package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nupi-ai/iso639/autonym"
)

// WriteTSV writes table t of d in the column layout of the data files the
// registries are compiled from, so an export can be fed back to
// iso639-tablegen.
func WriteTSV(w io.Writer, d Dataset, t Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	var rows [][]string
	switch t {
	case TableAutonym:
		rows = append(rows, []string{"tag3", "tag1", "name", "autonym", "source"})
		for _, r := range d.Autonyms {
			rows = append(rows, []string{r.Tag3, r.Tag1, r.Name, r.Autonym, r.Source})
		}
	case TableScript:
		rows = append(rows, []string{"tag3", "tag1", "script", "name", "source"})
		for _, r := range d.Scripts {
			var name string
			if a, ok := autonym.Get(r.Tag3); ok {
				name = a.Name
			}
			rows = append(rows, []string{r.Tag3, r.Tag1, r.Script, name, r.Source})
		}
	case TableLCID:
		rows = append(rows, []string{"tag3", "tag1", "script", "region", "lcid"})
		for _, r := range d.LCIDs {
			rows = append(rows, []string{r.Tag3, r.Tag1, r.Script, r.Region, strconv.FormatUint(uint64(r.LCID), 10)})
		}
	default:
		return fmt.Errorf("export: tsv needs a single table, got %q", t)
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("export: write tsv: %w", err)
	}
	return nil
}
