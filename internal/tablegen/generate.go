// Package tablegen compiles the language reference TSV files into Go source
// holding immutable, sorted lookup tables.
//
// Tag-keyed tables (autonyms, default scripts) become a records array ordered
// by ISO 639-3 tag plus a key index covering both tag forms. The LCID table
// becomes a records array ordered by (tag3, script, region) plus an index
// ordered by LCID value. Any malformed row, duplicate key or I/O error fails
// the whole run and no file is written.
package tablegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrStale is returned in check mode when a generated file on disk does not
// match what the current data would produce.
var ErrStale = errors.New("tablegen: generated table is stale")

// Options controls a generator run.
type Options struct {
	// Check renders every table and compares it with the file on disk
	// instead of writing.
	Check bool
}

// Generator compiles the tables listed in a manifest.
type Generator struct {
	log *logrus.Entry
}

// New returns a Generator that reports progress on log. A nil log discards
// all output.
func New(log *logrus.Entry) *Generator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Generator{log: log}
}

type renderer interface {
	render(pkg string) ([]byte, error)
}

type result struct {
	table  Table
	output string
	parsed renderer
	code   []byte
}

// Run compiles every table in m concurrently, cross-checks them, and then
// writes (or, with opts.Check, verifies) the generated files.
func (g *Generator) Run(ctx context.Context, m *Manifest, opts Options) error {
	results := make([]result, len(m.Tables))
	eg, ctx := errgroup.WithContext(ctx)
	for i, t := range m.Tables {
		i, t := i, t
		eg.Go(func() error {
			res, err := g.compile(ctx, m, t)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if err := crossCheckResults(results); err != nil {
		return fmt.Errorf("tablegen: %w", err)
	}

	if opts.Check {
		return g.check(results)
	}
	return g.write(results)
}

func (g *Generator) check(results []result) error {
	var stale []string
	for _, res := range results {
		log := g.log.WithFields(logrus.Fields{"table": res.table.Kind, "output": res.output})
		current, err := os.ReadFile(res.output)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("tablegen: read %s: %w", res.output, err)
		}
		if !bytes.Equal(current, res.code) {
			log.Warn("generated table is out of date")
			stale = append(stale, res.output)
			continue
		}
		log.Debug("generated table is up to date")
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %v", ErrStale, stale)
	}
	return nil
}

// write stages every table in a temp file next to its output and renames
// them into place only once all of them were written, so a failed run leaves
// the previous set of tables untouched.
func (g *Generator) write(results []result) error {
	staged := make([]string, 0, len(results))
	defer func() {
		for _, tmpPath := range staged {
			if tmpPath != "" {
				os.Remove(tmpPath)
			}
		}
	}()
	for _, res := range results {
		tmpPath, err := stageFile(res.output, res.code)
		if err != nil {
			return err
		}
		staged = append(staged, tmpPath)
	}

	for i, res := range results {
		if err := os.Rename(staged[i], res.output); err != nil {
			return fmt.Errorf("tablegen: rename %s: %w", res.output, err)
		}
		staged[i] = ""
		g.log.WithFields(logrus.Fields{
			"table":  res.table.Kind,
			"output": res.output,
			"bytes":  len(res.code),
		}).Info("wrote table")
	}
	return nil
}

func (g *Generator) compile(ctx context.Context, m *Manifest, t Table) (result, error) {
	if err := ctx.Err(); err != nil {
		return result{}, err
	}
	input := m.path(t.Input)
	f, err := os.Open(input)
	if err != nil {
		return result{}, fmt.Errorf("tablegen: open %s table: %w", t.Kind, err)
	}
	defer f.Close()

	name := filepath.Base(input)
	log := g.log.WithFields(logrus.Fields{"table": t.Kind, "input": name})

	var parsed renderer
	switch t.Kind {
	case KindAutonym:
		tbl, err := compileAutonyms(f, name)
		if err != nil {
			return result{}, fmt.Errorf("tablegen: %w", err)
		}
		log.WithFields(logrus.Fields{"records": len(tbl.records), "keys": len(tbl.index)}).Info("compiled table")
		parsed = tbl
	case KindScript:
		tbl, err := compileScripts(f, name)
		if err != nil {
			return result{}, fmt.Errorf("tablegen: %w", err)
		}
		log.WithFields(logrus.Fields{"records": len(tbl.records), "keys": len(tbl.index)}).Info("compiled table")
		parsed = tbl
	case KindLCID:
		tbl, err := compileLCIDs(f, name)
		if err != nil {
			return result{}, fmt.Errorf("tablegen: %w", err)
		}
		for _, v := range tbl.dupValues {
			log.WithField("lcid", fmt.Sprintf("0x%04X", v)).Warn("LCID value shared by several records")
		}
		log.WithField("records", len(tbl.records)).Info("compiled table")
		parsed = tbl
	default:
		return result{}, fmt.Errorf("tablegen: unknown table kind %q", t.Kind)
	}

	code, err := parsed.render(t.Package)
	if err != nil {
		return result{}, fmt.Errorf("tablegen: %w", err)
	}
	return result{table: t, output: m.path(t.Output), parsed: parsed, code: code}, nil
}

func crossCheckResults(results []result) error {
	var a *autonymTable
	var l *lcidTable
	for _, res := range results {
		switch tbl := res.parsed.(type) {
		case *autonymTable:
			a = tbl
		case *lcidTable:
			l = tbl
		}
	}
	if a == nil || l == nil {
		return nil
	}
	return crossCheck(a, l)
}

// stageFile writes data to a temp file in the directory of path and returns
// the temp file's name.
func stageFile(path string, data []byte) (string, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tablegen.tmp.*")
	if err != nil {
		return "", fmt.Errorf("tablegen: create temp for %s: %w", path, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("tablegen: write %s: %w", path, err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("tablegen: chmod %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("tablegen: close %s: %w", path, err)
	}
	return tmpPath, nil
}
