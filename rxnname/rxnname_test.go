package rxnname_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/componentdb/metanetx-assets/registry"
	"github.com/componentdb/metanetx-assets/rxnname"
	"github.com/componentdb/metanetx-assets/store"
)

func newGenerator(t *testing.T) *rxnname.Generator {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/bigg/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/bigg/")
		switch id {
		case "PYK":
			fmt.Fprint(w, `{"name": "Pyruvate kinase"}`)
		case "UNNAMED":
			fmt.Fprint(w, `{"name": ""}`)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/seed.tsv", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "id\tabbreviation\tname\n")
		fmt.Fprint(w, "rxn00148\tPYK\tpyruvate kinase\n")
		fmt.Fprint(w, "rxn00001\tPPA\tdiphosphate phosphohydrolase\n")
	})
	mux.HandleFunc("/kegg/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/kegg/")
		if id != "R00200" {
			fmt.Fprint(w, "\n")
			return
		}
		fmt.Fprint(w, "rn:R00200\tpyruvate kinase (KEGG); ATP:pyruvate 2-O-phosphotransferase\n")
	})
	mux.HandleFunc("/ec/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ec/2.7.1.40.txt" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "ID   2.7.1.40\nDE   Pyruvate kinase.\nAN   Phosphoenol transphosphorylase.\n")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	g := rxnname.New(zerolog.Nop())
	g.Client = server.Client()
	g.BiGGURL = server.URL + "/bigg"
	g.ModelSEEDURL = server.URL + "/seed.tsv"
	g.KEGGURL = server.URL + "/kegg"
	g.ExpasyURL = server.URL + "/ec"
	return g
}

func TestNameLookupOrder(t *testing.T) {
	g := newGenerator(t)
	ctx := context.Background()

	cases := []struct {
		name       string
		byPrefix   map[string][]string
		wantName   string
		wantSource string
	}{
		{
			name: "bigg wins over everything",
			byPrefix: map[string][]string{
				"bigg.reaction": {"PYK"},
				"seed.reaction": {"rxn00148"},
				"kegg.reaction": {"R00200"},
			},
			wantName:   "Pyruvate kinase",
			wantSource: "bigg.reaction",
		},
		{
			name: "empty bigg name falls through to seed",
			byPrefix: map[string][]string{
				"bigg.reaction": {"UNNAMED"},
				"seed.reaction": {"rxn00148"},
			},
			wantName:   "pyruvate kinase",
			wantSource: "seed.reaction",
		},
		{
			name: "unknown seed id falls through to kegg",
			byPrefix: map[string][]string{
				"seed.reaction": {"rxn99999"},
				"kegg.reaction": {"R00200"},
			},
			wantName:   "pyruvate kinase (KEGG)",
			wantSource: "kegg.reaction",
		},
		{
			name: "exact ec number",
			byPrefix: map[string][]string{
				"ec-code": {"2.7.1.40"},
			},
			wantName:   "Pyruvate kinase.",
			wantSource: "ec-code",
		},
		{
			name: "partial ec number is not queried",
			byPrefix: map[string][]string{
				"ec-code": {"2.7.1.-"},
			},
		},
		{
			name: "multiple ec numbers are ambiguous",
			byPrefix: map[string][]string{
				"ec-code": {"2.7.1.40", "1.1.1.1"},
			},
		},
		{
			name:     "no usable annotation",
			byPrefix: map[string][]string{"rhea": {"12345"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, source, err := g.Name(ctx, tc.byPrefix)
			if err != nil {
				t.Fatalf("Name: %v", err)
			}
			if name != tc.wantName || source != tc.wantSource {
				t.Errorf("got (%q, %q), want (%q, %q)", name, source, tc.wantName, tc.wantSource)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	g := newGenerator(t)
	ctx := context.Background()

	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	namespaces := []registry.Namespace{
		{Prefix: "metanetx.reaction", Name: "MetaNetX reactions"},
		{Prefix: "seed.reaction", Name: "ModelSEED reactions"},
		{Prefix: "rhea", Name: "Rhea"},
	}
	if err := s.InsertNamespaces(ctx, namespaces); err != nil {
		t.Fatalf("insert namespaces: %v", err)
	}
	if err := s.SeedQualifiers(ctx); err != nil {
		t.Fatalf("seed qualifiers: %v", err)
	}
	nsMap, err := s.NamespaceMapping(ctx)
	if err != nil {
		t.Fatalf("namespace mapping: %v", err)
	}
	qMap, err := s.QualifierMapping(ctx)
	if err != nil {
		t.Fatalf("qualifier mapping: %v", err)
	}

	batch := []store.ReactionRecord{
		{Annotations: []store.Annotation{
			{NamespaceID: nsMap["metanetx.reaction"], QualifierID: qMap["is"], Identifier: "MNXR100"},
			{NamespaceID: nsMap["seed.reaction"], QualifierID: qMap["is"], Identifier: "rxn00148"},
		}},
		{Annotations: []store.Annotation{
			{NamespaceID: nsMap["rhea"], QualifierID: qMap["is"], Identifier: "12345"},
		}},
	}
	ids, err := s.InsertReactions(ctx, batch)
	if err != nil {
		t.Fatalf("insert reactions: %v", err)
	}

	named, err := g.Generate(ctx, s)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if named != 1 {
		t.Fatalf("named %d reactions, want 1", named)
	}

	rows, err := s.DB().QueryContext(ctx,
		`SELECT reaction_id, namespace_id, name FROM reaction_names`)
	if err != nil {
		t.Fatalf("query names: %v", err)
	}
	defer func() { _ = rows.Close() }()
	count := 0
	for rows.Next() {
		var reactionID, namespaceID int64
		var name string
		if err := rows.Scan(&reactionID, &namespaceID, &name); err != nil {
			t.Fatalf("scan: %v", err)
		}
		count++
		if reactionID != ids[0] {
			t.Errorf("name attached to reaction %d, want %d", reactionID, ids[0])
		}
		if namespaceID != nsMap["seed.reaction"] {
			t.Errorf("name in namespace %d, want %d", namespaceID, nsMap["seed.reaction"])
		}
		if name != "pyruvate kinase" {
			t.Errorf("name %q, want %q", name, "pyruvate kinase")
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("%d reaction names stored, want 1", count)
	}
}
