package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/componentdb/metanetx-assets/etl"
	"github.com/componentdb/metanetx-assets/mnx"
	"github.com/componentdb/metanetx-assets/registry"
)

func namespaces(args []string) error {
	fs := flag.NewFlagSet("namespaces", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database path")
	registryPath := fs.String("registry", "registry.json", "Registry JSON produced by the registry command")
	chemProp := fs.String("chem-prop", "", "Path to chem_prop.tsv")
	chemXref := fs.String("chem-xref", "", "Path to chem_xref.tsv")
	compProp := fs.String("comp-prop", "", "Path to comp_prop.tsv")
	compXref := fs.String("comp-xref", "", "Path to comp_xref.tsv")
	reacProp := fs.String("reac-prop", "", "Path to reac_prop.tsv")
	reacXref := fs.String("reac-xref", "", "Path to reac_xref.tsv")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mnx-assets namespaces [options]

Scan all six MetaNetX tables for the namespace prefixes they
reference, then load those namespaces from the registry file into the
database. Run this before any of the entity loaders.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	for flagName, path := range map[string]*string{
		"chem-prop": chemProp, "chem-xref": chemXref,
		"comp-prop": compProp, "comp-xref": compXref,
		"reac-prop": reacProp, "reac-xref": reacXref,
	} {
		if *path == "" {
			fs.Usage()
			return fmt.Errorf("--%s is required", flagName)
		}
	}

	log := newLogger(*verbose)

	mapping, err := registry.LoadMapping(*registryPath)
	if err != nil {
		return err
	}

	chemicals, err := mnx.LoadChemProp(*chemProp)
	if err != nil {
		return err
	}
	chemXrefs, err := mnx.LoadCrossRefs(*chemXref, mnx.ChemicalPrefix)
	if err != nil {
		return err
	}
	comps, err := mnx.LoadCompProp(*compProp)
	if err != nil {
		return err
	}
	compXrefs, err := mnx.LoadCrossRefs(*compXref, mnx.CompartmentPrefix)
	if err != nil {
		return err
	}
	reacs, err := mnx.LoadReacProp(*reacProp)
	if err != nil {
		return err
	}
	reacXrefs, err := mnx.LoadCrossRefs(*reacXref, mnx.ReactionPrefix)
	if err != nil {
		return err
	}

	s, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	prefixes := etl.RequiredPrefixes(chemicals, chemXrefs, comps, compXrefs, reacs, reacXrefs)
	loader := etl.New(s, 0, log)
	n, err := loader.Namespaces(context.Background(), mapping, prefixes)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d namespaces\n", n)
	return nil
}
