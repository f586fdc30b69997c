// Command iso639-tablegen compiles the language reference TSV files into the
// Go lookup tables of the autonym, script and lcid packages.
//
// It is normally invoked through go generate:
//
//	go generate ./autonym
//
// With --check it writes nothing and exits non-zero when a committed table
// no longer matches its data file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/nupi-ai/iso639/internal/logging"
	"github.com/nupi-ai/iso639/internal/tablegen"
	"github.com/nupi-ai/iso639/internal/version"
	"github.com/spf13/cobra"
)

func newRootCommand(stderr io.Writer) *cobra.Command {
	var (
		configPath string
		check      bool
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:           "iso639-tablegen",
		Short:         "Compile ISO 639 data files into Go tables",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.Named(logging.New(stderr, verbose), "tablegen")
			m, err := tablegen.LoadManifest(configPath)
			if err != nil {
				return err
			}
			log.WithField("config", configPath).Debug("loaded manifest")
			return tablegen.New(log).Run(cmd.Context(), m, tablegen.Options{Check: check})
		},
	}
	cmd.Version = version.FormatVersion(version.String())
	cmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")
	cmd.Flags().StringVar(&configPath, "config", "data/tablegen.yaml", "Path to the table manifest")
	cmd.Flags().BoolVar(&check, "check", false, "Verify generated tables are current instead of writing them")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cmd := newRootCommand(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}
