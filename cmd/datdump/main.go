package main

import (
	"encoding/json"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/datcodec/dat"
	"github.com/wippyai/datcodec/schema"
	"github.com/wippyai/datcodec/source"
	"github.com/wippyai/datcodec/transcoder"
)

var errLimit = stderrors.New("row limit reached")

type options struct {
	datFile     string
	schemaFile  string
	table       string
	policy      string
	row         int
	limit       int
	asJSON      bool
	witOnly     bool
	verbose     bool
	interactive bool
}

func main() {
	var o options
	flag.StringVar(&o.datFile, "dat", "", "Path to .dat file")
	flag.StringVar(&o.schemaFile, "schema", "", "Path to YAML table layouts")
	flag.StringVar(&o.table, "table", "", "Table name (default: .dat file base name)")
	flag.IntVar(&o.row, "row", -1, "Decode a single row")
	flag.IntVar(&o.limit, "limit", 0, "Maximum number of rows to print (0 = all)")
	flag.BoolVar(&o.asJSON, "json", false, "Print rows as JSON lines")
	flag.BoolVar(&o.witOnly, "wit", false, "Print the table layout as a WIT record and exit")
	flag.StringVar(&o.policy, "policy", "reuse", "Heap policy: reuse or overwrite")
	flag.BoolVar(&o.verbose, "v", false, "Verbose logging")
	flag.BoolVar(&o.interactive, "i", false, "Interactive mode with TUI")
	flag.Parse()

	if o.schemaFile == "" || (o.datFile == "" && !o.witOnly) {
		fmt.Fprintln(os.Stderr, "Usage: datdump -schema <layouts.yaml> -dat <file.dat> [-row n] [-limit n] [-json]")
		fmt.Fprintln(os.Stderr, "       datdump -schema <layouts.yaml> -table <name> -wit")
		fmt.Fprintln(os.Stderr, "       datdump -schema <layouts.yaml> -dat <file.dat> -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(o, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func run(o options, out io.Writer) error {
	log, err := newLogger(o.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck
	transcoder.SetLogger(log.Named("transcoder"))
	dat.SetLogger(log.Named("dat"))

	policy, ok := transcoder.ParseHeapPolicy(o.policy)
	if !ok {
		return fmt.Errorf("unknown heap policy %q", o.policy)
	}

	layouts, err := schema.LoadFile(o.schemaFile)
	if err != nil {
		return fmt.Errorf("load layouts: %w", err)
	}
	reg, err := layouts.Registry()
	if err != nil {
		return fmt.Errorf("aliases: %w", err)
	}

	table := o.table
	if table == "" {
		base := filepath.Base(o.datFile)
		table = strings.TrimSuffix(base, filepath.Ext(base))
	}
	layout, err := layouts.Layout(table, reg)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	if o.witOnly {
		_, err := fmt.Fprintln(out, transcoder.WITString(layout.WITRecord(table)))
		return err
	}

	f, err := source.Open(o.datFile)
	if err != nil {
		return err
	}
	defer f.Close()

	tbl, err := dat.Open(f)
	if err != nil {
		return fmt.Errorf("open table: %w", err)
	}
	if err := tbl.CheckLayout(layout); err != nil {
		return fmt.Errorf("table %s: %w", table, err)
	}
	log.Info("table opened",
		zap.String("table", table),
		zap.Int("rows", tbl.RowCount()),
		zap.Int("row_width", tbl.RowWidth()))

	session := tbl.Session(reg, transcoder.WithHeapPolicy(policy))

	if o.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(o.datFile, table, tbl, session, layout)
	}

	if o.row >= 0 {
		rec, err := tbl.Row(session, layout, o.row)
		if err != nil {
			return err
		}
		return printRecord(out, o.row, rec, o.asJSON)
	}

	printed := 0
	err = tbl.Rows(session, layout, func(i int, rec *transcoder.Record) error {
		if err := printRecord(out, i, rec, o.asJSON); err != nil {
			return err
		}
		printed++
		if o.limit > 0 && printed >= o.limit {
			return errLimit
		}
		return nil
	})
	if err != nil && !stderrors.Is(err, errLimit) {
		return err
	}
	log.Debug("done", zap.Int("printed", printed), zap.Int("heap_entries", session.Heap().Len()))
	return nil
}

type jsonRow struct {
	Fields map[string]any `json:"fields"`
	Row    int            `json:"row"`
}

func printRecord(w io.Writer, i int, rec *transcoder.Record, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(jsonRow{Row: i, Fields: transcoder.PlainRecord(rec)})
	}
	if _, err := fmt.Fprintf(w, "Row %d:\n", i); err != nil {
		return err
	}
	return transcoder.FormatRecord(w, rec)
}
