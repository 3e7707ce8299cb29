package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/componentdb/metanetx-assets/rxnname"
)

func reactionNames(args []string) error {
	fs := flag.NewFlagSet("reaction-names", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database path")
	modelSEEDURL := fs.String("model-seed-url", rxnname.DefaultModelSEEDURL, "ModelSEED reaction dump URL")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mnx-assets reaction-names [options]

Resolve a human-readable name for every loaded reaction from BiGG,
ModelSEED, KEGG, and Expasy, in that order of preference. This hits
public web services for each reaction and can take a long time.
Requires the reactions command to have run first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(*verbose)

	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	generator := rxnname.New(log)
	generator.ModelSEEDURL = *modelSEEDURL

	n, err := generator.Generate(context.Background(), s)
	if err != nil {
		return err
	}
	fmt.Printf("Named %d reactions\n", n)
	return nil
}
