package mnx

import (
	"fmt"
	"io"
	"os"
)

func loadFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	rows, err := read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// LoadChemProp reads a chem_prop table from disk.
func LoadChemProp(path string) ([]Chemical, error) {
	return loadFile(path, ReadChemProp)
}

// LoadCompProp reads a comp_prop table from disk.
func LoadCompProp(path string) ([]Compartment, error) {
	return loadFile(path, ReadCompProp)
}

// LoadReacProp reads a reac_prop table from disk.
func LoadReacProp(path string) ([]Reaction, error) {
	return loadFile(path, ReadReacProp)
}

// LoadCrossRefs reads a *_xref table from disk.
func LoadCrossRefs(path, tablePrefix string) ([]CrossRef, error) {
	return loadFile(path, func(r io.Reader) ([]CrossRef, error) {
		return ReadCrossRefs(r, tablePrefix)
	})
}
