package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/componentdb/metanetx-assets/etl"
	"github.com/componentdb/metanetx-assets/mnx"
)

func reactions(args []string) error {
	fs := flag.NewFlagSet("reactions", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database path")
	reacProp := fs.String("reac-prop", "", "Path to reac_prop.tsv")
	reacXref := fs.String("reac-xref", "", "Path to reac_xref.tsv")
	batchSize := fs.Int("batch-size", etl.DefaultBatchSize, "Reactions inserted per transaction")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mnx-assets reactions [options]

Load the reac_prop table and its cross-references. Each reaction
equation is resolved against the compounds and compartments already
in the database; rows that cannot be resolved are logged and skipped.
Requires the compartments and compounds commands to have run first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *reacProp == "" || *reacXref == "" {
		fs.Usage()
		return fmt.Errorf("--reac-prop and --reac-xref are required")
	}

	log := newLogger(*verbose)

	rows, err := mnx.LoadReacProp(*reacProp)
	if err != nil {
		return err
	}
	xrefs, err := mnx.LoadCrossRefs(*reacXref, mnx.ReactionPrefix)
	if err != nil {
		return err
	}

	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	loader := etl.New(s, *batchSize, log)
	n, err := loader.Reactions(context.Background(), rows, xrefs)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d reactions\n", n)
	return nil
}
