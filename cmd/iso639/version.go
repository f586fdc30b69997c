package main

import (
	"github.com/nupi-ai/iso639/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.String()
			return newOutputFormatter(cmd).Result(version.FormatVersion(v), map[string]string{
				"version": v,
				"release": version.Release(v),
			})
		},
	}
}
