package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nupi-ai/iso639/autonym"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

type searchCandidate struct {
	record int
	key    string
}

// buildCandidates returns one lower-cased search key per English name and
// autonym, each pointing back at its record.
func buildCandidates(records []autonym.Record) ([]searchCandidate, []string) {
	candidates := make([]searchCandidate, 0, 2*len(records))
	for i, r := range records {
		candidates = append(candidates, searchCandidate{record: i, key: strings.ToLower(r.Name)})
		if r.Autonym != "" && r.Autonym != r.Name {
			candidates = append(candidates, searchCandidate{record: i, key: strings.ToLower(r.Autonym)})
		}
	}
	keys := make([]string, len(candidates))
	for i, c := range candidates {
		keys[i] = c.key
	}
	return candidates, keys
}

// searchLanguages ranks records by how well their names match query. An
// exact tag match always comes first.
func searchLanguages(query string, limit int) []autonym.Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	records := autonym.All()
	var results []autonym.Record
	seen := map[string]bool{}
	if r, ok := autonym.Get(strings.ToLower(query)); ok {
		results = append(results, r)
		seen[r.Tag3] = true
	}

	candidates, keys := buildCandidates(records)
	for _, m := range fuzzy.Find(strings.ToLower(query), keys) {
		r := records[candidates[m.Index].record]
		if seen[r.Tag3] {
			continue
		}
		seen[r.Tag3] = true
		results = append(results, r)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func newSearchCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find languages by English name or autonym",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := searchLanguages(query, limit)
			commandLogger(cmd).WithField("query", query).WithField("matches", len(results)).Debug("search finished")
			if len(results) == 0 {
				return errNotFound
			}
			out := newOutputFormatter(cmd)
			if out.jsonMode {
				return out.Print(results)
			}
			return writeSearchTable(cmd, results)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results (0 for all)")
	return cmd
}

// writeSearchTable aligns columns by display width; autonyms mix scripts
// whose characters occupy one or two terminal cells.
func writeSearchTable(cmd *cobra.Command, results []autonym.Record) error {
	nameWidth := runewidth.StringWidth("NAME")
	for _, r := range results {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
	}
	w := cmd.OutOrStdout()
	line := func(tag3, tag1, name, self string) {
		row := fmt.Sprintf("%-4s  %-3s  %s  %s", tag3, tag1, runewidth.FillRight(name, nameWidth), self)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
	line("TAG3", "TAG1", "NAME", "AUTONYM")
	for _, r := range results {
		line(r.Tag3, r.Tag1, r.Name, r.Autonym)
	}
	return nil
}
