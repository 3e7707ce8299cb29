package etl

import (
	"context"
	"fmt"

	"github.com/componentdb/metanetx-assets/mnx"
	"github.com/componentdb/metanetx-assets/store"
)

// Compounds loads chem_prop rows and their cross-references into the
// store. Compounds sharing an InChIKey describe the same structure:
// the first occurrence is inserted as a new row, later occurrences
// merge their names and identifiers into it. The returned count is
// the number of distinct compound rows inserted.
func (l *Loader) Compounds(ctx context.Context, rows []mnx.Chemical, xrefs []mnx.CrossRef) (int, error) {
	runID, err := l.store.BeginRun(ctx, "compounds")
	if err != nil {
		return 0, err
	}

	nsMap, qualifierID, err := l.mappings(ctx)
	if err != nil {
		return 0, err
	}
	grouped := mnx.GroupCrossRefs(xrefs)

	var unique, duplicates []mnx.Chemical
	seen := make(map[string]bool)
	for _, row := range rows {
		if row.InChIKey != "" {
			if seen[row.InChIKey] {
				duplicates = append(duplicates, row)
				continue
			}
			seen[row.InChIKey] = true
		}
		unique = append(unique, row)
	}

	total := 0
	for start := 0; start < len(unique); start += l.batchSize {
		end := min(start+l.batchSize, len(unique))
		batch := make([]store.CompoundRecord, 0, end-start)
		for _, row := range unique[start:end] {
			l.log.Debug().Str("mnx_id", row.ID).Msg("compound")
			names, identifiers := l.collectCompound(row, grouped[row.ID])
			batch = append(batch, store.CompoundRecord{
				InChI:       row.InChI,
				InChIKey:    row.InChIKey,
				SMILES:      row.SMILES,
				Formula:     row.Formula,
				Charge:      row.Charge,
				Mass:        row.Mass,
				Names:       names.names(nsMap, l.log),
				Annotations: identifiers.annotations(nsMap, qualifierID, l.log),
			})
		}
		if _, err := l.store.InsertCompounds(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
		l.log.Info().Int("loaded", total).Int("total", len(unique)).Msg("compound batch committed")
	}

	for _, row := range duplicates {
		if err := l.mergeDuplicate(ctx, row, grouped[row.ID], nsMap, qualifierID); err != nil {
			return total, err
		}
	}
	if len(duplicates) > 0 {
		l.log.Info().Int("merged", len(duplicates)).Msg("duplicate structures merged")
	}

	return total, l.store.FinishRun(ctx, runID, total)
}

func (l *Loader) collectCompound(row mnx.Chemical, xrefs []mnx.CrossRef) (*collector, *collector) {
	names := newCollector()
	names.addAll(row.Reference.Prefix, mnx.SplitNames(row.Name))

	identifiers := newCollector()
	identifiers.add(mnx.ChemicalPrefix, row.ID)
	identifiers.add(row.Reference.Prefix, row.Reference.Identifier)

	for _, xref := range xrefs {
		names.addAll(xref.Source.Prefix, mnx.SplitNames(xref.Description))
		identifiers.add(xref.Source.Prefix, xref.Source.Identifier)
	}
	return names, identifiers
}

// mergeDuplicate appends the names and identifiers of a duplicate
// structure to the compound that was inserted for its InChIKey,
// skipping entries already present.
func (l *Loader) mergeDuplicate(ctx context.Context, row mnx.Chemical, xrefs []mnx.CrossRef, nsMap map[string]int64, qualifierID int64) error {
	l.log.Debug().Str("mnx_id", row.ID).Msg("duplicate structure")

	compoundID, ok, err := l.store.FindCompoundByInChIKey(ctx, row.InChIKey)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("etl: no compound for InChIKey %q", row.InChIKey)
	}

	existingNames, err := l.store.CompoundNameSet(ctx, compoundID)
	if err != nil {
		return err
	}
	existingAnnotations, err := l.store.CompoundAnnotationSet(ctx, compoundID)
	if err != nil {
		return err
	}

	names, identifiers := l.collectCompound(row, xrefs)

	var newNames []store.Name
	for _, name := range names.names(nsMap, l.log) {
		if !existingNames[name.NamespaceID][name.Name] {
			newNames = append(newNames, name)
		}
	}
	var newAnnotations []store.Annotation
	for _, ann := range identifiers.annotations(nsMap, qualifierID, l.log) {
		if !existingAnnotations[ann.NamespaceID][ann.Identifier] {
			newAnnotations = append(newAnnotations, ann)
		}
	}

	if len(newNames) == 0 && len(newAnnotations) == 0 {
		return nil
	}
	return l.store.AddCompoundDetails(ctx, compoundID, newNames, newAnnotations)
}
