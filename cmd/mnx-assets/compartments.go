package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/componentdb/metanetx-assets/etl"
	"github.com/componentdb/metanetx-assets/mnx"
)

func compartments(args []string) error {
	fs := flag.NewFlagSet("compartments", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database path")
	compProp := fs.String("comp-prop", "", "Path to comp_prop.tsv")
	compXref := fs.String("comp-xref", "", "Path to comp_xref.tsv")
	batchSize := fs.Int("batch-size", etl.DefaultBatchSize, "Compartments inserted per transaction")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mnx-assets compartments [options]

Load the comp_prop table and its cross-references. Requires the
namespaces command to have run first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *compProp == "" || *compXref == "" {
		fs.Usage()
		return fmt.Errorf("--comp-prop and --comp-xref are required")
	}

	log := newLogger(*verbose)

	rows, err := mnx.LoadCompProp(*compProp)
	if err != nil {
		return err
	}
	xrefs, err := mnx.LoadCrossRefs(*compXref, mnx.CompartmentPrefix)
	if err != nil {
		return err
	}

	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	loader := etl.New(s, *batchSize, log)
	n, err := loader.Compartments(context.Background(), rows, xrefs)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d compartments\n", n)
	return nil
}
