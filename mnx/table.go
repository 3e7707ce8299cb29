// Package mnx reads the MetaNetX flat-file reference tables
// (chem_prop, chem_xref, comp_prop, comp_xref, reac_prop, reac_xref).
package mnx

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MetaNetX namespace prefixes owned by the three entity tables.
const (
	ChemicalPrefix    = "metanetx.chemical"
	CompartmentPrefix = "metanetx.compartment"
	ReactionPrefix    = "metanetx.reaction"
)

// Reference is an external identifier split into its Identifiers.org
// namespace prefix and the identifier proper.
type Reference struct {
	Prefix     string
	Identifier string
}

// ParseReference splits "prefix:identifier" on the first colon. A
// bare identifier, or one carrying the internal "mnx" prefix, belongs
// to the table's own MetaNetX namespace.
func ParseReference(s, tablePrefix string) Reference {
	prefix, identifier, found := strings.Cut(s, ":")
	if !found {
		return Reference{Prefix: tablePrefix, Identifier: s}
	}
	if prefix == "mnx" {
		return Reference{Prefix: tablePrefix, Identifier: identifier}
	}
	return Reference{Prefix: prefix, Identifier: identifier}
}

// SplitNames splits a MetaNetX description field on "|" into
// individual names, trimming whitespace and dropping empty entries.
// This separator belongs to the name field only and has nothing to do
// with the reaction equation grammar.
func SplitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, "|") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Chemical is one row of the chem_prop table.
type Chemical struct {
	ID        string
	Name      string
	Reference Reference
	Formula   string
	Charge    *float64
	Mass      *float64
	InChI     string
	InChIKey  string
	SMILES    string
}

// Compartment is one row of the comp_prop table.
type Compartment struct {
	ID        string
	Name      string
	Reference Reference
}

// Reaction is one row of the reac_prop table.
type Reaction struct {
	ID          string
	Equation    string
	Reference   Reference
	ECNumbers   []string
	IsBalanced  bool
	IsTransport bool
}

// CrossRef is one row of any of the three *_xref tables.
type CrossRef struct {
	Source      Reference
	ID          string
	Description string
}

// scanLines iterates over the data lines of a table, skipping blank
// and "#"-prefixed comment/header lines. InChI strings can make rows
// very long, hence the enlarged scanner buffer.
func scanLines(r io.Reader, minFields int, fn func(ln int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			return fmt.Errorf("line %d: expected at least %d fields, got %d", ln, minFields, len(fields))
		}
		if err := fn(ln, fields); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ReadChemProp reads chem_prop rows
// (ID, name, reference, formula, charge, mass, InChI, InChIKey, SMILES).
func ReadChemProp(r io.Reader) ([]Chemical, error) {
	var rows []Chemical
	err := scanLines(r, 9, func(ln int, f []string) error {
		charge, err := parseOptionalFloat(f[4])
		if err != nil {
			return fmt.Errorf("line %d: bad charge: %w", ln, err)
		}
		mass, err := parseOptionalFloat(f[5])
		if err != nil {
			return fmt.Errorf("line %d: bad mass: %w", ln, err)
		}
		rows = append(rows, Chemical{
			ID:        f[0],
			Name:      f[1],
			Reference: ParseReference(f[2], ChemicalPrefix),
			Formula:   f[3],
			Charge:    charge,
			Mass:      mass,
			InChI:     f[6],
			InChIKey:  f[7],
			SMILES:    f[8],
		})
		return nil
	})
	return rows, err
}

// ReadCompProp reads comp_prop rows (ID, name, reference).
func ReadCompProp(r io.Reader) ([]Compartment, error) {
	var rows []Compartment
	err := scanLines(r, 3, func(ln int, f []string) error {
		rows = append(rows, Compartment{
			ID:        f[0],
			Name:      f[1],
			Reference: ParseReference(f[2], CompartmentPrefix),
		})
		return nil
	})
	return rows, err
}

// ReadReacProp reads reac_prop rows
// (ID, equation, reference, EC numbers, is_balanced, is_transport).
// EC numbers are ";"-separated; the equation string is kept verbatim
// for the equation package to parse.
func ReadReacProp(r io.Reader) ([]Reaction, error) {
	var rows []Reaction
	err := scanLines(r, 6, func(ln int, f []string) error {
		rows = append(rows, Reaction{
			ID:          f[0],
			Equation:    f[1],
			Reference:   ParseReference(f[2], ReactionPrefix),
			ECNumbers:   splitECNumbers(f[3]),
			IsBalanced:  parseFlag(f[4]),
			IsTransport: parseFlag(f[5]),
		})
		return nil
	})
	return rows, err
}

// ReadCrossRefs reads *_xref rows (source, ID, description). The
// tablePrefix names the MetaNetX namespace of the table the
// references point into.
func ReadCrossRefs(r io.Reader, tablePrefix string) ([]CrossRef, error) {
	var rows []CrossRef
	err := scanLines(r, 2, func(ln int, f []string) error {
		description := ""
		if len(f) > 2 {
			description = f[2]
		}
		rows = append(rows, CrossRef{
			Source:      ParseReference(f[0], tablePrefix),
			ID:          f[1],
			Description: description,
		})
		return nil
	})
	return rows, err
}

// GroupCrossRefs indexes cross-references by their MetaNetX ID.
func GroupCrossRefs(refs []CrossRef) map[string][]CrossRef {
	grouped := make(map[string][]CrossRef)
	for _, ref := range refs {
		grouped[ref.ID] = append(grouped[ref.ID], ref)
	}
	return grouped
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" || s == "NA" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseFlag(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B", "T", "TRUE", "1":
		return true
	}
	return false
}

func splitECNumbers(s string) []string {
	var numbers []string
	for _, part := range strings.Split(s, ";") {
		if ec := strings.TrimSpace(part); ec != "" {
			numbers = append(numbers, ec)
		}
	}
	return numbers
}
