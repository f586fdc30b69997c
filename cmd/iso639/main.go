// Command iso639 queries the ISO 639 language registries: autonyms, default
// scripts and Windows LCIDs.
//
// Every lookup exits 0 when the answer exists and 1 otherwise, so the
// commands compose in shell conditionals:
//
//	iso639 has-1 haw || echo "no two-letter code"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nupi-ai/iso639/internal/logging"
	"github.com/nupi-ai/iso639/internal/version"
	"github.com/spf13/cobra"
)

// errNotFound ends a command with exit status 1 and no diagnostic.
var errNotFound = errors.New("not found")

// OutputFormatter handles output in JSON or human-readable format
type OutputFormatter struct {
	jsonMode bool
	w        io.Writer
}

// newOutputFormatter creates a new formatter based on the command's --json flag
func newOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonMode, _ := cmd.Flags().GetBool("json")
	return &OutputFormatter{jsonMode: jsonMode, w: cmd.OutOrStdout()}
}

// Print outputs data as JSON in JSON mode. Otherwise strings are printed as
// lines and anything else falls back to JSON.
func (f *OutputFormatter) Print(data any) error {
	if s, ok := data.(string); ok && !f.jsonMode {
		_, err := fmt.Fprintln(f.w, s)
		return err
	}
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(f.w, string(jsonBytes))
	return err
}

// Result prints text in human mode and data in JSON mode.
func (f *OutputFormatter) Result(text string, data any) error {
	if f.jsonMode {
		return f.Print(data)
	}
	return f.Print(text)
}

// commandLogger returns the debug logger for cmd, honouring --verbose.
func commandLogger(cmd *cobra.Command) *logging.Entry {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.Named(logging.New(cmd.ErrOrStderr(), verbose), "iso639")
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iso639",
		Short: "Look up ISO 639 language tags, autonyms, scripts and LCIDs",
		Long: `iso639 answers questions about ISO 639-1 and ISO 639-3 language tags:
the name a language uses for itself, the script it is usually written in,
and the Windows locale identifier (LCID) of a language/script/region
combination. Lookups that find nothing exit with status 1.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Version = version.FormatVersion(version.String())
	rootCmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log lookup details to stderr")

	rootCmd.AddCommand(
		newAutonymCommand(),
		newTagCommand(),
		newIsCommand(),
		newHas1Command(),
		newScriptCommand(),
		newLCIDCommand(),
		newFromLCIDCommand(),
		newInfoCommand(),
		newSearchCommand(),
		newExportCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errNotFound) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
