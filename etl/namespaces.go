package etl

import (
	"context"

	"github.com/componentdb/metanetx-assets/registry"
)

// Namespaces loads the Identifiers.org namespaces required by the
// given prefixes into the store and seeds the biology qualifiers.
// MetaNetX carries EC numbers in a dedicated column without a prefix,
// so "ec-code" is always included.
func (l *Loader) Namespaces(ctx context.Context, mapping registry.Mapping, prefixes map[string]struct{}) (int, error) {
	runID, err := l.store.BeginRun(ctx, "namespaces")
	if err != nil {
		return 0, err
	}

	required := make(map[string]struct{}, len(prefixes)+1)
	for prefix := range prefixes {
		required[prefix] = struct{}{}
	}
	required["ec-code"] = struct{}{}

	namespaces, err := mapping.Filter(required)
	if err != nil {
		return 0, err
	}

	if err := l.store.InsertNamespaces(ctx, namespaces); err != nil {
		return 0, err
	}
	if err := l.store.SeedQualifiers(ctx); err != nil {
		return 0, err
	}

	l.log.Info().Int("namespaces", len(namespaces)).Msg("namespaces loaded")
	return len(namespaces), l.store.FinishRun(ctx, runID, len(namespaces))
}
