package etl

import (
	"context"
	"errors"

	"github.com/componentdb/metanetx-assets/mnx"
	"github.com/componentdb/metanetx-assets/store"
)

var errNoQualifier = errors.New("etl: biology qualifier 'is' not seeded")

// Compartments loads comp_prop rows and their cross-references into
// the store in batches. It returns the number of compartments loaded.
func (l *Loader) Compartments(ctx context.Context, rows []mnx.Compartment, xrefs []mnx.CrossRef) (int, error) {
	runID, err := l.store.BeginRun(ctx, "compartments")
	if err != nil {
		return 0, err
	}

	nsMap, qualifierID, err := l.mappings(ctx)
	if err != nil {
		return 0, err
	}
	grouped := mnx.GroupCrossRefs(xrefs)

	total := 0
	for start := 0; start < len(rows); start += l.batchSize {
		end := min(start+l.batchSize, len(rows))
		batch := make([]store.CompartmentRecord, 0, end-start)
		for _, row := range rows[start:end] {
			l.log.Debug().Str("mnx_id", row.ID).Msg("compartment")

			names := newCollector()
			names.addAll(row.Reference.Prefix, mnx.SplitNames(row.Name))

			identifiers := newCollector()
			identifiers.add(mnx.CompartmentPrefix, row.ID)
			identifiers.add(row.Reference.Prefix, row.Reference.Identifier)

			for _, xref := range grouped[row.ID] {
				names.addAll(xref.Source.Prefix, mnx.SplitNames(xref.Description))
				identifiers.add(xref.Source.Prefix, xref.Source.Identifier)
			}

			batch = append(batch, store.CompartmentRecord{
				Names:       names.names(nsMap, l.log),
				Annotations: identifiers.annotations(nsMap, qualifierID, l.log),
			})
		}
		if _, err := l.store.InsertCompartments(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
		l.log.Info().Int("loaded", total).Int("total", len(rows)).Msg("compartment batch committed")
	}

	return total, l.store.FinishRun(ctx, runID, total)
}

// mappings fetches the namespace mapping and the "is" qualifier ID
// every pipeline needs.
func (l *Loader) mappings(ctx context.Context) (map[string]int64, int64, error) {
	nsMap, err := l.store.NamespaceMapping(ctx)
	if err != nil {
		return nil, 0, err
	}
	qMap, err := l.store.QualifierMapping(ctx)
	if err != nil {
		return nil, 0, err
	}
	qualifierID, ok := qMap["is"]
	if !ok {
		return nil, 0, errNoQualifier
	}
	return nsMap, qualifierID, nil
}
