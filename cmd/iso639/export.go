package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nupi-ai/iso639/internal/export"
	"github.com/nupi-ai/iso639/internal/version"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var (
		format string
		table  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the registries as JSON, TSV or SQLite",
		Long: `Dump the compiled registries. JSON exports every table unless --table
narrows it; TSV needs --table and writes the same columns as the data files;
SQLite always writes all three tables and needs --output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			t, err := export.ParseTable(table)
			if err != nil {
				return err
			}
			log := commandLogger(cmd).WithField("format", f)

			if f == export.FormatSQLite {
				if output == "" || output == "-" {
					return fmt.Errorf("export: sqlite needs --output")
				}
				if t != export.TableAll {
					log.WithField("table", t).Debug("sqlite export ignores --table")
				}
				if err := export.WriteSQLite(cmd.Context(), output, export.Load(export.TableAll), version.String()); err != nil {
					return err
				}
				log.WithField("output", output).Debug("wrote database")
				return nil
			}

			d := export.Load(t)
			write := func(w io.Writer) error {
				if f == export.FormatTSV {
					return export.WriteTSV(w, d, t)
				}
				return export.WriteJSON(w, d)
			}
			if output == "" || output == "-" {
				return write(cmd.OutOrStdout())
			}
			return writeOutputFile(output, write)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, tsv or sqlite")
	cmd.Flags().StringVarP(&table, "table", "t", "", "Table to export: autonym, script or lcid")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func writeOutputFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(file)
	if err := write(bw); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
