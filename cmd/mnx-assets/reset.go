package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func reset(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database path")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mnx-assets reset [options] <kind>...

Drop the loaded rows for one or more entity kinds so they can be
reloaded. Kinds: namespaces, compartments, compounds, reactions.
Dropping reactions leaves compounds in place; dropping compounds also
drops the reactions that reference them.

Examples:
  mnx-assets reset --db assets.sqlite reactions
  mnx-assets reset --db assets.sqlite compounds reactions
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("at least one entity kind is required")
	}

	log := newLogger(*verbose)

	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	for _, kind := range fs.Args() {
		var err error
		switch kind {
		case "namespaces":
			err = s.ResetNamespaces(ctx)
		case "compartments":
			err = s.ResetCompartments(ctx)
		case "compounds":
			err = s.ResetCompounds(ctx)
		case "reactions":
			err = s.ResetReactions(ctx)
		default:
			return fmt.Errorf("unknown entity kind %q", kind)
		}
		if err != nil {
			return err
		}
		log.Info().Str("kind", kind).Msg("reset")
	}
	return nil
}
