package store

import (
	"context"
	"fmt"

	"github.com/componentdb/metanetx-assets/registry"
)

// DefaultQualifiers are the BioModels biology qualifiers seeded into
// every database.
var DefaultQualifiers = []string{
	"is", "hasPart", "isPartOf", "isVersionOf", "hasVersion",
	"isHomologTo", "isDescribedBy", "isEncodedBy", "encodes",
	"occursIn", "hasProperty", "isPropertyOf", "hasTaxon",
}

// InsertNamespaces inserts Identifiers.org namespaces, ignoring
// prefixes that are already present.
func (s *Store) InsertNamespaces(ctx context.Context, namespaces []registry.Namespace) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO namespaces
		 (miriam_id, prefix, pattern, name, description, embedded_prefix, created_on, updated_on)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, ns := range namespaces {
		if _, err := stmt.ExecContext(ctx,
			ns.MiriamID, ns.Prefix, ns.Pattern, ns.Name, ns.Description,
			ns.EmbeddedPrefix, ns.CreatedOn.Time, ns.UpdatedOn.Time,
		); err != nil {
			return fmt.Errorf("insert namespace %q: %w", ns.Prefix, err)
		}
	}
	return tx.Commit()
}

// NamespaceMapping returns namespace row IDs keyed by prefix.
func (s *Store) NamespaceMapping(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT prefix, id FROM namespaces`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	mapping := make(map[string]int64)
	for rows.Next() {
		var prefix string
		var id int64
		if err := rows.Scan(&prefix, &id); err != nil {
			return nil, err
		}
		mapping[prefix] = id
	}
	return mapping, rows.Err()
}

// SeedQualifiers inserts the default biology qualifiers, ignoring any
// that already exist.
func (s *Store) SeedQualifiers(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, qualifier := range DefaultQualifiers {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO biology_qualifiers (qualifier) VALUES (?)`, qualifier,
		); err != nil {
			return fmt.Errorf("seed qualifier %q: %w", qualifier, err)
		}
	}
	return tx.Commit()
}

// QualifierMapping returns biology qualifier row IDs keyed by
// qualifier name.
func (s *Store) QualifierMapping(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT qualifier, id FROM biology_qualifiers`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	mapping := make(map[string]int64)
	for rows.Next() {
		var qualifier string
		var id int64
		if err := rows.Scan(&qualifier, &id); err != nil {
			return nil, err
		}
		mapping[qualifier] = id
	}
	return mapping, rows.Err()
}
