package store

import (
	"context"
	"database/sql"
	"fmt"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// InsertCompounds inserts a batch of compounds with their names and
// annotations in a single transaction. It returns the new row IDs in
// batch order.
func (s *Store) InsertCompounds(ctx context.Context, batch []CompoundRecord) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]int64, 0, len(batch))
	for _, record := range batch {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO compounds (inchi, inchi_key, smiles, chemical_formula, charge, mass)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			nullString(record.InChI), nullString(record.InChIKey), nullString(record.SMILES),
			nullString(record.Formula), nullFloat(record.Charge), nullFloat(record.Mass),
		)
		if err != nil {
			return nil, fmt.Errorf("insert compound: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		if err := insertCompoundDetails(ctx, tx, id, record.Names, record.Annotations); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

func insertCompoundDetails(ctx context.Context, tx *sql.Tx, id int64, names []Name, annotations []Annotation) error {
	for _, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO compound_names (compound_id, namespace_id, name) VALUES (?, ?, ?)`,
			id, name.NamespaceID, name.Name,
		); err != nil {
			return fmt.Errorf("insert compound name %q: %w", name.Name, err)
		}
	}
	for _, ann := range annotations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO compound_annotations
			 (compound_id, namespace_id, biology_qualifier_id, identifier)
			 VALUES (?, ?, ?, ?)`,
			id, ann.NamespaceID, ann.QualifierID, ann.Identifier,
		); err != nil {
			return fmt.Errorf("insert compound annotation %q: %w", ann.Identifier, err)
		}
	}
	return nil
}

// AddCompoundDetails appends names and annotations to an existing
// compound. Used when a duplicate structure merges into the row that
// was inserted first.
func (s *Store) AddCompoundDetails(ctx context.Context, compoundID int64, names []Name, annotations []Annotation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertCompoundDetails(ctx, tx, compoundID, names, annotations); err != nil {
		return err
	}
	return tx.Commit()
}

// FindCompoundByInChIKey returns the compound with the given InChIKey,
// or ok=false when none exists.
func (s *Store) FindCompoundByInChIKey(ctx context.Context, inchiKey string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM compounds WHERE inchi_key = ? LIMIT 1`, inchiKey,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// CompoundNameSet returns the existing names of a compound grouped by
// namespace ID.
func (s *Store) CompoundNameSet(ctx context.Context, compoundID int64) (map[int64]map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT namespace_id, name FROM compound_names WHERE compound_id = ?`, compoundID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanGroupedSet(rows)
}

// CompoundAnnotationSet returns the existing annotation identifiers of
// a compound grouped by namespace ID.
func (s *Store) CompoundAnnotationSet(ctx context.Context, compoundID int64) (map[int64]map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT namespace_id, identifier FROM compound_annotations WHERE compound_id = ?`, compoundID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanGroupedSet(rows)
}

func scanGroupedSet(rows *sql.Rows) (map[int64]map[string]bool, error) {
	grouped := make(map[int64]map[string]bool)
	for rows.Next() {
		var namespaceID int64
		var value string
		if err := rows.Scan(&namespaceID, &value); err != nil {
			return nil, err
		}
		if grouped[namespaceID] == nil {
			grouped[namespaceID] = make(map[string]bool)
		}
		grouped[namespaceID][value] = true
	}
	return grouped, rows.Err()
}

// CompoundMapping returns compound row IDs keyed by their identifier
// in the given namespace.
func (s *Store) CompoundMapping(ctx context.Context, namespaceID int64) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT identifier, compound_id FROM compound_annotations WHERE namespace_id = ?`,
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
