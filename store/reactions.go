package store

import (
	"context"
	"fmt"
)

// InsertReactions inserts a batch of reactions with their
// participants, names, and annotations in a single transaction.
// Participants are stored in slice order; the position column makes
// the substrate-then-product ordering durable.
func (s *Store) InsertReactions(ctx context.Context, batch []ReactionRecord) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]int64, 0, len(batch))
	for _, record := range batch {
		result, err := tx.ExecContext(ctx, `INSERT INTO reactions DEFAULT VALUES`)
		if err != nil {
			return nil, fmt.Errorf("insert reaction: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		for position, part := range record.Participants {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO participants
				 (reaction_id, compound_id, compartment_id, stoichiometry, is_product, position)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				id, part.CompoundID, part.CompartmentID, part.Stoichiometry, part.IsProduct, position,
			); err != nil {
				return nil, fmt.Errorf("insert participant: %w", err)
			}
		}
		for _, name := range record.Names {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO reaction_names (reaction_id, namespace_id, name) VALUES (?, ?, ?)`,
				id, name.NamespaceID, name.Name,
			); err != nil {
				return nil, fmt.Errorf("insert reaction name %q: %w", name.Name, err)
			}
		}
		for _, ann := range record.Annotations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO reaction_annotations
				 (reaction_id, namespace_id, biology_qualifier_id, identifier)
				 VALUES (?, ?, ?, ?)`,
				id, ann.NamespaceID, ann.QualifierID, ann.Identifier,
			); err != nil {
				return nil, fmt.Errorf("insert reaction annotation %q: %w", ann.Identifier, err)
			}
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Participants returns the stored participants of a reaction in
// position order.
func (s *Store) Participants(ctx context.Context, reactionID int64) ([]ParticipantRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT compound_id, compartment_id, stoichiometry, is_product
		 FROM participants WHERE reaction_id = ? ORDER BY position`,
		reactionID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var participants []ParticipantRecord
	for rows.Next() {
		var part ParticipantRecord
		if err := rows.Scan(&part.CompoundID, &part.CompartmentID, &part.Stoichiometry, &part.IsProduct); err != nil {
			return nil, err
		}
		participants = append(participants, part)
	}
	return participants, rows.Err()
}

// ReactionAnnotations returns, for every reaction, its annotation
// identifiers grouped by namespace prefix. Used by the reaction name
// generator to find cross-database identifiers worth querying.
func (s *Store) ReactionAnnotations(ctx context.Context) (map[int64]map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ra.reaction_id, ns.prefix, ra.identifier
		 FROM reaction_annotations ra
		 JOIN namespaces ns ON ns.id = ra.namespace_id
		 ORDER BY ra.reaction_id, ra.id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	annotations := make(map[int64]map[string][]string)
	for rows.Next() {
		var reactionID int64
		var prefix, identifier string
		if err := rows.Scan(&reactionID, &prefix, &identifier); err != nil {
			return nil, err
		}
		if annotations[reactionID] == nil {
			annotations[reactionID] = make(map[string][]string)
		}
		annotations[reactionID][prefix] = append(annotations[reactionID][prefix], identifier)
	}
	return annotations, rows.Err()
}

// AddReactionNames appends names to an existing reaction.
func (s *Store) AddReactionNames(ctx context.Context, reactionID int64, names []Name) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reaction_names (reaction_id, namespace_id, name) VALUES (?, ?, ?)`,
			reactionID, name.NamespaceID, name.Name,
		); err != nil {
			return fmt.Errorf("insert reaction name %q: %w", name.Name, err)
		}
	}
	return tx.Commit()
}
