package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/componentdb/metanetx-assets/etl"
	"github.com/componentdb/metanetx-assets/mnx"
)

func compounds(args []string) error {
	fs := flag.NewFlagSet("compounds", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database path")
	chemProp := fs.String("chem-prop", "", "Path to chem_prop.tsv")
	chemXref := fs.String("chem-xref", "", "Path to chem_xref.tsv")
	batchSize := fs.Int("batch-size", etl.DefaultBatchSize, "Compounds inserted per transaction")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mnx-assets compounds [options]

Load the chem_prop table and its cross-references. Rows sharing an
InChIKey are merged into a single compound. Requires the namespaces
command to have run first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chemProp == "" || *chemXref == "" {
		fs.Usage()
		return fmt.Errorf("--chem-prop and --chem-xref are required")
	}

	log := newLogger(*verbose)

	rows, err := mnx.LoadChemProp(*chemProp)
	if err != nil {
		return err
	}
	xrefs, err := mnx.LoadCrossRefs(*chemXref, mnx.ChemicalPrefix)
	if err != nil {
		return err
	}

	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	loader := etl.New(s, *batchSize, log)
	n, err := loader.Compounds(context.Background(), rows, xrefs)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d compounds\n", n)
	return nil
}
