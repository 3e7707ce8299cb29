package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/componentdb/metanetx-assets/registry"
)

func registryCmd(args []string) error {
	fs := flag.NewFlagSet("registry", flag.ExitOnError)
	output := fs.String("output", "registry.json", "Path for the downloaded registry JSON")
	url := fs.String("url", registry.DefaultURL, "Identifiers.org resolver dataset URL")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mnx-assets registry [options]

Download the Identifiers.org namespace registry and store it as JSON.
The other commands read this file instead of hitting the network.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(*verbose)
	client := registry.NewClient(*url, nil, log)

	mapping, err := client.Fetch(context.Background())
	if err != nil {
		return err
	}
	if err := registry.SaveMapping(*output, mapping); err != nil {
		return err
	}

	log.Info().Int("namespaces", len(mapping)).Str("path", *output).Msg("registry saved")
	return nil
}
