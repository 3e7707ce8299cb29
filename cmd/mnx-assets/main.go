package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "registry":
		if err := registryCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "namespaces":
		if err := namespaces(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compartments":
		if err := compartments(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compounds":
		if err := compounds(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "reactions":
		if err := reactions(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "reaction-names":
		if err := reactionNames(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "reset":
		if err := reset(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("mnx-assets version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mnx-assets - load MetaNetX chemistry tables into a component database

Usage:
  mnx-assets <command> [options]

Commands:
  registry       Download the Identifiers.org namespace registry to JSON
  namespaces     Load the namespaces required by the MetaNetX tables
  compartments   Load comp_prop and comp_xref
  compounds      Load chem_prop and chem_xref
  reactions      Load reac_prop and reac_xref, resolving equations
  reaction-names Generate human-readable reaction names from public databases
  reset          Drop loaded rows for one or more entity kinds
  help           Show this help message
  version        Show version information

Examples:
  # Fetch the namespace registry once
  mnx-assets registry --output registry.json

  # Load everything, in dependency order
  mnx-assets namespaces --db assets.sqlite --registry registry.json \
      --chem-prop chem_prop.tsv --chem-xref chem_xref.tsv \
      --comp-prop comp_prop.tsv --comp-xref comp_xref.tsv \
      --reac-prop reac_prop.tsv --reac-xref reac_xref.tsv
  mnx-assets compartments --db assets.sqlite --comp-prop comp_prop.tsv --comp-xref comp_xref.tsv
  mnx-assets compounds --db assets.sqlite --chem-prop chem_prop.tsv --chem-xref chem_xref.tsv
  mnx-assets reactions --db assets.sqlite --reac-prop reac_prop.tsv --reac-xref reac_xref.tsv

For command-specific help, run:
  mnx-assets <command> --help`)
}
