// Package store persists the component schema (namespaces,
// compartments, compounds, reactions, and their names and
// annotations) in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store handles all database operations for the asset loader.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at the given path and ensures
// the schema exists. Use ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS namespaces (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	miriam_id TEXT NOT NULL,
	prefix TEXT NOT NULL UNIQUE,
	pattern TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	embedded_prefix INTEGER NOT NULL DEFAULT 0,
	created_on DATETIME,
	updated_on DATETIME
);

CREATE TABLE IF NOT EXISTS biology_qualifiers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	qualifier TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS compartments (
	id INTEGER PRIMARY KEY AUTOINCREMENT
);

CREATE TABLE IF NOT EXISTS compartment_names (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	compartment_id INTEGER NOT NULL REFERENCES compartments(id),
	namespace_id INTEGER NOT NULL REFERENCES namespaces(id),
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS compartment_annotations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	compartment_id INTEGER NOT NULL REFERENCES compartments(id),
	namespace_id INTEGER NOT NULL REFERENCES namespaces(id),
	biology_qualifier_id INTEGER NOT NULL REFERENCES biology_qualifiers(id),
	identifier TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS compounds (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	inchi TEXT,
	inchi_key TEXT,
	smiles TEXT,
	chemical_formula TEXT,
	charge REAL,
	mass REAL
);

CREATE TABLE IF NOT EXISTS compound_names (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	compound_id INTEGER NOT NULL REFERENCES compounds(id),
	namespace_id INTEGER NOT NULL REFERENCES namespaces(id),
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS compound_annotations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	compound_id INTEGER NOT NULL REFERENCES compounds(id),
	namespace_id INTEGER NOT NULL REFERENCES namespaces(id),
	biology_qualifier_id INTEGER NOT NULL REFERENCES biology_qualifiers(id),
	identifier TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT
);

CREATE TABLE IF NOT EXISTS reaction_names (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reaction_id INTEGER NOT NULL REFERENCES reactions(id),
	namespace_id INTEGER NOT NULL REFERENCES namespaces(id),
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reaction_annotations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reaction_id INTEGER NOT NULL REFERENCES reactions(id),
	namespace_id INTEGER NOT NULL REFERENCES namespaces(id),
	biology_qualifier_id INTEGER NOT NULL REFERENCES biology_qualifiers(id),
	identifier TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reaction_id INTEGER NOT NULL REFERENCES reactions(id),
	compound_id INTEGER NOT NULL REFERENCES compounds(id),
	compartment_id INTEGER NOT NULL REFERENCES compartments(id),
	stoichiometry TEXT NOT NULL,
	is_product INTEGER NOT NULL,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS etl_runs (
	id TEXT PRIMARY KEY,
	command TEXT NOT NULL,
	started_at DATETIME NOT NULL,
	finished_at DATETIME,
	rows INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_compounds_inchi_key ON compounds(inchi_key);
CREATE INDEX IF NOT EXISTS idx_compound_annotations_ns ON compound_annotations(namespace_id, identifier);
CREATE INDEX IF NOT EXISTS idx_compartment_annotations_ns ON compartment_annotations(namespace_id, identifier);
CREATE INDEX IF NOT EXISTS idx_reaction_annotations_rxn ON reaction_annotations(reaction_id);
CREATE INDEX IF NOT EXISTS idx_participants_rxn ON participants(reaction_id);
`

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) reset(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return s.migrate()
}

// ResetNamespaces drops and recreates the namespace table. Every
// name and annotation table references namespaces, so this resets all
// loaded entities.
func (s *Store) ResetNamespaces(ctx context.Context) error {
	return s.reset(ctx,
		"participants", "reaction_annotations", "reaction_names", "reactions",
		"compound_annotations", "compound_names", "compounds",
		"compartment_annotations", "compartment_names", "compartments",
		"namespaces")
}

// ResetCompartments drops and recreates the compartment tables.
// Participants reference compartments, so the reaction tables go too.
func (s *Store) ResetCompartments(ctx context.Context) error {
	return s.reset(ctx,
		"participants", "reaction_annotations", "reaction_names", "reactions",
		"compartment_annotations", "compartment_names", "compartments")
}

// ResetCompounds drops and recreates the compound tables.
// Participants reference compounds, so the reaction tables go too.
func (s *Store) ResetCompounds(ctx context.Context) error {
	return s.reset(ctx,
		"participants", "reaction_annotations", "reaction_names", "reactions",
		"compound_annotations", "compound_names", "compounds")
}

// ResetReactions drops and recreates the reaction tables.
func (s *Store) ResetReactions(ctx context.Context) error {
	return s.reset(ctx, "participants", "reaction_annotations", "reaction_names", "reactions")
}
