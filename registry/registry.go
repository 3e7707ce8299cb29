// Package registry models the Identifiers.org namespace registry and
// fetches it over HTTP.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultURL is the Identifiers.org resolver dataset endpoint.
const DefaultURL = "https://registry.api.identifiers.org/resolutionApi/getResolverDataset"

var (
	ErrMissingPrefix = errors.New("registry: prefix not in registry")
	ErrEmptyRegistry = errors.New("registry: resolver dataset contains no namespaces")
)

// Namespace is one Identifiers.org namespace. The JSON tags follow
// the resolver API field names; stored snapshots use the same form.
type Namespace struct {
	Prefix         string `json:"prefix"`
	MiriamID       string `json:"mirId"`
	Name           string `json:"name"`
	Pattern        string `json:"pattern"`
	Description    string `json:"description"`
	EmbeddedPrefix bool   `json:"namespaceEmbeddedInLui"`
	CreatedOn      Time   `json:"created"`
	UpdatedOn      Time   `json:"modified"`
}

// Dataset is the resolver API response envelope.
type Dataset struct {
	APIVersion   string  `json:"apiVersion"`
	ErrorMessage *string `json:"errorMessage"`
	Payload      struct {
		Namespaces []Namespace `json:"namespaces"`
	} `json:"payload"`
}

// Mapping indexes namespaces by prefix.
type Mapping map[string]Namespace

// NewMapping builds a prefix index from a namespace list.
func NewMapping(namespaces []Namespace) Mapping {
	mapping := make(Mapping, len(namespaces))
	for _, ns := range namespaces {
		mapping[ns.Prefix] = ns
	}
	return mapping
}

// Filter selects the namespaces for the given prefixes. Prefixes
// missing from the registry are patched with a placeholder where one
// is known; an unknown missing prefix fails with ErrMissingPrefix.
func (m Mapping) Filter(prefixes map[string]struct{}) ([]Namespace, error) {
	result := make([]Namespace, 0, len(prefixes))
	for prefix := range prefixes {
		ns, ok := m[prefix]
		if !ok {
			patched, ok := Patch(prefix)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingPrefix, prefix)
			}
			ns = patched
		}
		result = append(result, ns)
	}
	return result, nil
}

// Patch synthesizes a placeholder namespace for a prefix that is used
// by MetaNetX but absent from the Identifiers.org registry.
func Patch(prefix string) (Namespace, bool) {
	switch prefix {
	case "envipath":
		return Namespace{
			Prefix:      "envipath",
			MiriamID:    "MIR:00000000",
			Name:        "enviPath",
			Pattern:     `^.+$`,
			Description: "A placeholder until envipath is added to the Identifiers.org registry.",
		}, true
	}
	return Namespace{}, false
}

// SaveMapping writes a prefix-to-namespace mapping as JSON.
func SaveMapping(path string, mapping Mapping) error {
	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("registry: encode mapping: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadMapping reads a prefix-to-namespace mapping from a JSON
// snapshot written by SaveMapping.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var mapping Mapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("registry: decode mapping %s: %w", path, err)
	}
	return mapping, nil
}
