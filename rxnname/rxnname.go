// Package rxnname generates human-readable reaction names by looking
// up a reaction's cross-database identifiers against BiGG, ModelSEED,
// KEGG, and the Expasy enzyme database, in that order. Name
// resolution is best effort: a reaction no source can name is counted
// and left without a name.
package rxnname

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/componentdb/metanetx-assets/store"
)

// Default lookup endpoints.
const (
	DefaultBiGGURL      = "http://bigg.ucsd.edu/api/v2/universal/reactions"
	DefaultModelSEEDURL = "https://raw.githubusercontent.com/ModelSEED/ModelSEEDDatabase/dev/Biochemistry/reactions.tsv"
	DefaultKEGGURL      = "https://rest.kegg.jp/find/reaction"
	DefaultExpasyURL    = "https://enzyme.expasy.org/EC"
)

var errModelSEEDColumns = errors.New("rxnname: ModelSEED dump is missing id or name column")

// Expasy lookups only make sense for exact four-part EC numbers;
// partial classes like 1.1.1.- name a family, not a reaction.
var ecPattern = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// Generator resolves reaction names against the public databases.
// Endpoint URLs and the HTTP client are exported so tests can point
// them at local servers.
type Generator struct {
	Client       *http.Client
	BiGGURL      string
	ModelSEEDURL string
	KEGGURL      string
	ExpasyURL    string

	log  zerolog.Logger
	seed map[string]string
}

// New creates a generator with the default endpoints and a 5-minute
// HTTP timeout.
func New(log zerolog.Logger) *Generator {
	return &Generator{
		Client:       &http.Client{Timeout: 5 * time.Minute},
		BiGGURL:      DefaultBiGGURL,
		ModelSEEDURL: DefaultModelSEEDURL,
		KEGGURL:      DefaultKEGGURL,
		ExpasyURL:    DefaultExpasyURL,
		log:          log,
	}
}

// Generate walks every reaction in the store, resolves a name for it
// where possible, and inserts the resolved names. It returns the
// number of reactions that received a name.
func (g *Generator) Generate(ctx context.Context, s *store.Store) (int, error) {
	runID, err := s.BeginRun(ctx, "reaction-names")
	if err != nil {
		return 0, err
	}

	if err := g.loadModelSEED(ctx); err != nil {
		return 0, err
	}

	nsMap, err := s.NamespaceMapping(ctx)
	if err != nil {
		return 0, err
	}
	annotations, err := s.ReactionAnnotations(ctx)
	if err != nil {
		return 0, err
	}

	named, failed := 0, 0
	stats := make(map[string]int)
	for reactionID, byPrefix := range annotations {
		name, source, err := g.Name(ctx, byPrefix)
		if err != nil {
			g.log.Warn().Err(err).Int64("reaction_id", reactionID).Msg("name lookup failed")
			failed++
			continue
		}
		if name == "" {
			stats["unmapped"]++
			continue
		}
		namespaceID, ok := nsMap[source]
		if !ok {
			g.log.Error().Str("prefix", source).Msg("unknown namespace prefix")
			continue
		}
		if err := s.AddReactionNames(ctx, reactionID, []store.Name{
			{NamespaceID: namespaceID, Name: name},
		}); err != nil {
			return named, err
		}
		named++
		stats[source]++
	}

	event := g.log.Info().Int("named", named).Int("failed", failed)
	for source, count := range stats {
		event = event.Int(source, count)
	}
	event.Msg("reaction names generated")
	return named, s.FinishRun(ctx, runID, named)
}

// Name tries the lookup sources in order of reliability and returns
// the first name found together with the namespace prefix it came
// from. A reaction no source can name returns empty strings and a nil
// error.
func (g *Generator) Name(ctx context.Context, byPrefix map[string][]string) (string, string, error) {
	if ids := byPrefix["bigg.reaction"]; len(ids) > 0 {
		name, err := g.lookupBiGG(ctx, ids[0])
		if err != nil || name != "" {
			return name, "bigg.reaction", err
		}
	}
	if ids := byPrefix["seed.reaction"]; len(ids) > 0 {
		if err := g.loadModelSEED(ctx); err != nil {
			return "", "", err
		}
		if name := g.seed[ids[0]]; name != "" {
			return name, "seed.reaction", nil
		}
	}
	if ids := byPrefix["kegg.reaction"]; len(ids) > 0 {
		name, err := g.lookupKEGG(ctx, ids[0])
		if err != nil || name != "" {
			return name, "kegg.reaction", err
		}
	}
	if ecs := byPrefix["ec-code"]; len(ecs) == 1 && ecPattern.MatchString(ecs[0]) {
		name, err := g.lookupExpasy(ctx, ecs[0])
		if err != nil || name != "" {
			return name, "ec-code", err
		}
	}
	return "", "", nil
}

// loadModelSEED downloads the ModelSEED reaction dump once and
// indexes it by reaction identifier.
func (g *Generator) loadModelSEED(ctx context.Context) error {
	if g.seed != nil {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.ModelSEEDURL, nil)
	if err != nil {
		return err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("rxnname: download ModelSEED dump: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rxnname: download ModelSEED dump: %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("rxnname: read ModelSEED header: %w", err)
	}
	idCol, nameCol := -1, -1
	for i, column := range header {
		switch column {
		case "id":
			idCol = i
		case "name":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return errModelSEEDColumns
	}

	g.seed = make(map[string]string)
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		if len(record) <= idCol || len(record) <= nameCol {
			continue
		}
		g.seed[record[idCol]] = record[nameCol]
	}
	g.log.Info().Int("reactions", len(g.seed)).Msg("ModelSEED dump indexed")
	return nil
}

func (g *Generator) lookupBiGG(ctx context.Context, id string) (string, error) {
	body, err := g.get(ctx, g.BiGGURL+"/"+id)
	if err != nil {
		return "", err
	}
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("rxnname: decode BiGG response for %s: %w", id, err)
	}
	return payload.Name, nil
}

// lookupKEGG parses the find endpoint's single result line. The line
// format is identifier, a tab, then a semicolon-separated name list;
// the first entry is the common name.
func (g *Generator) lookupKEGG(ctx context.Context, id string) (string, error) {
	body, err := g.get(ctx, g.KEGGURL+"/"+id)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(body), "\n")
	_, names, found := strings.Cut(line, "\t")
	if !found {
		return "", nil
	}
	name, _, _ := strings.Cut(names, ";")
	return strings.TrimSpace(name), nil
}

// lookupExpasy extracts the DE (description) line from the enzyme
// entry's flat-file record.
func (g *Generator) lookupExpasy(ctx context.Context, ec string) (string, error) {
	body, err := g.get(ctx, g.ExpasyURL+"/"+ec+".txt")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(body), "\n") {
		key, value, found := strings.Cut(line, " ")
		if found && key == "DE" {
			return strings.TrimSpace(value), nil
		}
	}
	return "", nil
}

func (g *Generator) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rxnname: GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
