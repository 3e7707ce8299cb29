package etl

import (
	"context"

	"github.com/componentdb/metanetx-assets/equation"
	"github.com/componentdb/metanetx-assets/mnx"
	"github.com/componentdb/metanetx-assets/store"
)

// Reactions loads reac_prop rows and their cross-references into the
// store. Each equation is resolved against the compounds and
// compartments loaded earlier; rows whose equation fails to parse or
// references an unknown entity are logged and skipped rather than
// aborting the run. It returns the number of reactions loaded.
func (l *Loader) Reactions(ctx context.Context, rows []mnx.Reaction, xrefs []mnx.CrossRef) (int, error) {
	runID, err := l.store.BeginRun(ctx, "reactions")
	if err != nil {
		return 0, err
	}

	nsMap, qualifierID, err := l.mappings(ctx)
	if err != nil {
		return 0, err
	}
	compounds, compartments, err := l.equationMappings(ctx, nsMap)
	if err != nil {
		return 0, err
	}
	grouped := mnx.GroupCrossRefs(xrefs)

	total, skipped := 0, 0
	for start := 0; start < len(rows); start += l.batchSize {
		end := min(start+l.batchSize, len(rows))
		batch := make([]store.ReactionRecord, 0, end-start)
		for _, row := range rows[start:end] {
			l.log.Debug().Str("mnx_id", row.ID).Msg("reaction")

			resolved, err := equation.Resolve(row.Equation, compounds, compartments)
			if err != nil {
				l.log.Warn().Err(err).Str("mnx_id", row.ID).Str("equation", row.Equation).
					Msg("skipping reaction")
				skipped++
				continue
			}

			participants := make([]store.ParticipantRecord, 0, len(resolved))
			for _, part := range resolved {
				participants = append(participants, store.ParticipantRecord{
					CompoundID:    part.CompoundID,
					CompartmentID: part.CompartmentID,
					Stoichiometry: part.Stoichiometry,
					IsProduct:     part.IsProduct,
				})
			}

			identifiers := newCollector()
			identifiers.add(mnx.ReactionPrefix, row.ID)
			identifiers.add(row.Reference.Prefix, row.Reference.Identifier)
			identifiers.addAll("ec-code", row.ECNumbers)
			for _, xref := range grouped[row.ID] {
				identifiers.add(xref.Source.Prefix, xref.Source.Identifier)
			}

			batch = append(batch, store.ReactionRecord{
				Participants: participants,
				Annotations:  identifiers.annotations(nsMap, qualifierID, l.log),
			})
		}
		if _, err := l.store.InsertReactions(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
		l.log.Info().Int("loaded", total).Int("total", len(rows)).Msg("reaction batch committed")
	}

	if skipped > 0 {
		l.log.Warn().Int("skipped", skipped).Msg("reactions with unresolvable equations")
	}
	return total, l.store.FinishRun(ctx, runID, total)
}

// equationMappings builds the token-to-ID lookup tables used to
// resolve reaction equations from the compounds and compartments
// already in the store.
func (l *Loader) equationMappings(ctx context.Context, nsMap map[string]int64) (map[string]int64, map[string]int64, error) {
	chemNS, ok := nsMap[mnx.ChemicalPrefix]
	if !ok {
		return nil, nil, &missingNamespaceError{prefix: mnx.ChemicalPrefix}
	}
	compNS, ok := nsMap[mnx.CompartmentPrefix]
	if !ok {
		return nil, nil, &missingNamespaceError{prefix: mnx.CompartmentPrefix}
	}
	compounds, err := l.store.CompoundMapping(ctx, chemNS)
	if err != nil {
		return nil, nil, err
	}
	compartments, err := l.store.CompartmentMapping(ctx, compNS)
	if err != nil {
		return nil, nil, err
	}
	return compounds, compartments, nil
}

type missingNamespaceError struct {
	prefix string
}

func (e *missingNamespaceError) Error() string {
	return "etl: namespace " + e.prefix + " not loaded"
}
