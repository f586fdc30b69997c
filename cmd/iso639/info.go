package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/lcid"
	"github.com/nupi-ai/iso639/script"
	"github.com/spf13/cobra"
)

// languageInfo gathers everything the registries know about one language.
type languageInfo struct {
	autonym.Record
	Script string        `json:"script,omitempty"`
	LCIDs  []lcid.Record `json:"lcids,omitempty"`
}

func lookupInfo(tag string) (languageInfo, bool) {
	r, ok := autonym.Get(tag)
	if !ok {
		return languageInfo{}, false
	}
	info := languageInfo{Record: r, LCIDs: lcid.ForLanguage(r.Tag3)}
	if s, ok := script.Get(r.Tag3); ok {
		info.Script = s.Script
	}
	return info, true
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <tag>",
		Short: "Show everything known about a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := lookupInfo(args[0])
			if !ok {
				return errNotFound
			}
			out := newOutputFormatter(cmd)
			if out.jsonMode {
				return out.Print(info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Tag3:     %s\n", info.Tag3)
			if info.Tag1 != "" {
				fmt.Fprintf(w, "Tag1:     %s\n", info.Tag1)
			}
			fmt.Fprintf(w, "Name:     %s\n", info.Name)
			if info.Autonym != "" {
				fmt.Fprintf(w, "Autonym:  %s\n", info.Autonym)
			}
			if info.Script != "" {
				fmt.Fprintf(w, "Script:   %s\n", info.Script)
			}
			fmt.Fprintf(w, "Source:   %s\n", info.Source)
			if len(info.LCIDs) == 0 {
				return nil
			}

			fmt.Fprintln(w, "LCIDs:")
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "  TAG\tLCID\tHEX")
			for _, rec := range info.LCIDs {
				fmt.Fprintf(tw, "  %s\t%d\t0x%04X\n", rec.Tag(), rec.LCID, rec.LCID)
			}
			return tw.Flush()
		},
	}
}
