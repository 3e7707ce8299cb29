package store

import (
	"context"
	"fmt"
)

// InsertCompartments inserts a batch of compartments with their names
// and annotations in a single transaction. It returns the new row IDs
// in batch order.
func (s *Store) InsertCompartments(ctx context.Context, batch []CompartmentRecord) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]int64, 0, len(batch))
	for _, record := range batch {
		result, err := tx.ExecContext(ctx, `INSERT INTO compartments DEFAULT VALUES`)
		if err != nil {
			return nil, fmt.Errorf("insert compartment: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		for _, name := range record.Names {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO compartment_names (compartment_id, namespace_id, name) VALUES (?, ?, ?)`,
				id, name.NamespaceID, name.Name,
			); err != nil {
				return nil, fmt.Errorf("insert compartment name %q: %w", name.Name, err)
			}
		}
		for _, ann := range record.Annotations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO compartment_annotations
				 (compartment_id, namespace_id, biology_qualifier_id, identifier)
				 VALUES (?, ?, ?, ?)`,
				id, ann.NamespaceID, ann.QualifierID, ann.Identifier,
			); err != nil {
				return nil, fmt.Errorf("insert compartment annotation %q: %w", ann.Identifier, err)
			}
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// CompartmentMapping returns compartment row IDs keyed by their
// identifier in the given namespace.
func (s *Store) CompartmentMapping(ctx context.Context, namespaceID int64) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT identifier, compartment_id FROM compartment_annotations WHERE namespace_id = ?`,
		namespaceID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	mapping := make(map[string]int64)
	for rows.Next() {
		var identifier string
		var id int64
		if err := rows.Scan(&identifier, &id); err != nil {
			return nil, err
		}
		mapping[identifier] = id
	}
	return mapping, rows.Err()
}
