// Package etl transforms MetaNetX tables into component schema rows
// and loads them in batches.
package etl

import (
	"github.com/rs/zerolog"

	"github.com/componentdb/metanetx-assets/mnx"
	"github.com/componentdb/metanetx-assets/store"
)

// DefaultBatchSize is the number of entities loaded per transaction.
const DefaultBatchSize = 1000

// Loader runs the ETL pipelines against a store.
type Loader struct {
	store     *store.Store
	batchSize int
	log       zerolog.Logger
}

// New creates a loader. A batchSize of zero or less selects
// DefaultBatchSize.
func New(s *store.Store, batchSize int, log zerolog.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{store: s, batchSize: batchSize, log: log}
}

// collector accumulates identifiers or names per namespace prefix,
// deduplicating within a prefix while preserving first-seen order so
// that insertion order is stable.
type collector struct {
	order    []string
	byPrefix map[string]map[string]bool
	values   map[string][]string
}

func newCollector() *collector {
	return &collector{
		byPrefix: make(map[string]map[string]bool),
		values:   make(map[string][]string),
	}
}

func (c *collector) add(prefix, value string) {
	if value == "" {
		return
	}
	seen, ok := c.byPrefix[prefix]
	if !ok {
		seen = make(map[string]bool)
		c.byPrefix[prefix] = seen
		c.order = append(c.order, prefix)
	}
	if seen[value] {
		return
	}
	seen[value] = true
	c.values[prefix] = append(c.values[prefix], value)
}

func (c *collector) addAll(prefix string, values []string) {
	for _, value := range values {
		c.add(prefix, value)
	}
}

// names flattens the collector into store names, skipping (and
// logging) prefixes without a known namespace.
func (c *collector) names(nsMap map[string]int64, log zerolog.Logger) []store.Name {
	var result []store.Name
	for _, prefix := range c.order {
		namespaceID, ok := nsMap[prefix]
		if !ok {
			log.Error().Str("prefix", prefix).Msg("unknown namespace prefix")
			continue
		}
		for _, value := range c.values[prefix] {
			result = append(result, store.Name{NamespaceID: namespaceID, Name: value})
		}
	}
	return result
}

// annotations flattens the collector into store annotations, skipping
// (and logging) prefixes without a known namespace.
func (c *collector) annotations(nsMap map[string]int64, qualifierID int64, log zerolog.Logger) []store.Annotation {
	var result []store.Annotation
	for _, prefix := range c.order {
		namespaceID, ok := nsMap[prefix]
		if !ok {
			log.Error().Str("prefix", prefix).Msg("unknown namespace prefix")
			continue
		}
		for _, value := range c.values[prefix] {
			result = append(result, store.Annotation{
				NamespaceID: namespaceID,
				QualifierID: qualifierID,
				Identifier:  value,
			})
		}
	}
	return result
}

// RequiredPrefixes collects every namespace prefix referenced by the
// six MetaNetX tables, plus the tables' own namespaces.
func RequiredPrefixes(
	chemicals []mnx.Chemical, chemXrefs []mnx.CrossRef,
	compartments []mnx.Compartment, compXrefs []mnx.CrossRef,
	reactions []mnx.Reaction, reacXrefs []mnx.CrossRef,
) map[string]struct{} {
	prefixes := map[string]struct{}{
		mnx.ChemicalPrefix:    {},
		mnx.CompartmentPrefix: {},
		mnx.ReactionPrefix:    {},
	}
	for _, row := range chemicals {
		prefixes[row.Reference.Prefix] = struct{}{}
	}
	for _, row := range compartments {
		prefixes[row.Reference.Prefix] = struct{}{}
	}
	for _, row := range reactions {
		prefixes[row.Reference.Prefix] = struct{}{}
	}
	for _, xrefs := range [][]mnx.CrossRef{chemXrefs, compXrefs, reacXrefs} {
		for _, row := range xrefs {
			prefixes[row.Source.Prefix] = struct{}{}
		}
	}
	return prefixes
}
