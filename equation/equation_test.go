package equation

import (
	"errors"
	"reflect"
	"testing"
)

// sampleEquations are realistic MetaNetX reaction equations, all
// syntactically valid and all nonempty.
var sampleEquations = []string{
	"1 MNXM1@MNXC3 + 2 MNXM4@MNXC3 = 1 MNXM9@MNXC4",
	"1 MNXM2@MNXC2 = 1 MNXM2@MNXC19",
	"1 MNXM1@MNXD1 = 1 MNXM1@MNXD2",
	"1 BIOMASS@MNXC3 = 1 MNXM162258@BOUNDARY",
	"(n) MNXM9@MNXC3 = (n) MNXM9@MNXC2",
	"0.5 MNXM735438@MNXC19 + 1 MNXM10@MNXC19 = 1 MNXM727276@MNXC19",
	"1 MNXM1@MNXDX = 1 MNXM1@MNXC3",
	"2 MNXM4@MNXC3 =",
	"= 2 MNXM4@MNXC3",
}

func TestLexer_BasicTokens(t *testing.T) {
	input := `1 MNXM1@MNXC3 + 0.5 BIOMASS@BOUNDARY = (n) MNXM9@MNXDX`
	tokens := Tokenize(input)

	expected := []struct {
		typ TokenType
		lit string
	}{
		{TokenNumber, "1"},
		{TokenCompound, "MNXM1"},
		{TokenAt, "@"},
		{TokenCompartment, "MNXC3"},
		{TokenPlus, "+"},
		{TokenNumber, "0.5"},
		{TokenCompound, "BIOMASS"},
		{TokenAt, "@"},
		{TokenCompartment, "BOUNDARY"},
		{TokenEquals, "="},
		{TokenExpr, "(n)"},
		{TokenCompound, "MNXM9"},
		{TokenAt, "@"},
		{TokenCompartment, "MNXDX"},
		{TokenEOF, ""},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, e := range expected {
		if tokens[i].Type != e.typ {
			t.Errorf("token %d: expected type %v, got %v", i, e.typ, tokens[i].Type)
		}
		if tokens[i].Literal != e.lit {
			t.Errorf("token %d: expected literal %q, got %q", i, e.lit, tokens[i].Literal)
		}
	}
}

func TestLexer_NestedExpr(t *testing.T) {
	tokens := Tokenize("(2n+(m-1)) [x[0]]")

	if tokens[0].Type != TokenExpr || tokens[0].Literal != "(2n+(m-1))" {
		t.Errorf("expected nested paren expr, got %v %q", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[1].Type != TokenExpr || tokens[1].Literal != "[x[0]]" {
		t.Errorf("expected nested bracket expr, got %v %q", tokens[1].Type, tokens[1].Literal)
	}
}

func TestLexer_UnknownWordIsIllegal(t *testing.T) {
	for _, word := range []string{"MNXR1", "MNX", "biomass", "MNXM", "MNXC", "MNXM1a"} {
		tokens := Tokenize(word)
		if tokens[0].Type != TokenIllegal {
			t.Errorf("%q: expected illegal token, got %v", word, tokens[0].Type)
		}
	}
}

func TestParse_EmptyEquation(t *testing.T) {
	eq, err := Parse("=")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(eq.Substrates) != 0 || len(eq.Products) != 0 {
		t.Errorf("expected empty sides, got %d substrates, %d products",
			len(eq.Substrates), len(eq.Products))
	}
}

func TestParse_Participants(t *testing.T) {
	eq, err := Parse("1 MNXM1@MNXC3 + 2 MNXM4@MNXC3 = 1 MNXM9@MNXC4")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	wantSubstrates := []Participant{
		{Coefficient: "1", Compound: "MNXM1", Compartment: "MNXC3"},
		{Coefficient: "2", Compound: "MNXM4", Compartment: "MNXC3"},
	}
	wantProducts := []Participant{
		{Coefficient: "1", Compound: "MNXM9", Compartment: "MNXC4"},
	}
	if !reflect.DeepEqual(eq.Substrates, wantSubstrates) {
		t.Errorf("substrates: got %v, want %v", eq.Substrates, wantSubstrates)
	}
	if !reflect.DeepEqual(eq.Products, wantProducts) {
		t.Errorf("products: got %v, want %v", eq.Products, wantProducts)
	}
}

func TestParse_SymbolicCoefficient(t *testing.T) {
	eq, err := Parse("(n) MNXM9@MNXC3 = (n+1) MNXM9@MNXC2")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := eq.Substrates[0].Coefficient; got != "(n)" {
		t.Errorf("expected coefficient %q preserved verbatim, got %q", "(n)", got)
	}
	if got := eq.Products[0].Coefficient; got != "(n+1)" {
		t.Errorf("expected coefficient %q preserved verbatim, got %q", "(n+1)", got)
	}
}

func TestParse_DuplicateParticipantsPreserved(t *testing.T) {
	eq, err := Parse("1 MNXM1@MNXC3 + 1 MNXM1@MNXC3 =")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(eq.Substrates) != 2 {
		t.Fatalf("expected 2 substrates, got %d", len(eq.Substrates))
	}
	if eq.Substrates[0] != eq.Substrates[1] {
		t.Errorf("expected identical duplicate entries, got %v and %v",
			eq.Substrates[0], eq.Substrates[1])
	}
}

func TestParse_WhitespaceInsensitive(t *testing.T) {
	a, err := Parse("1 MNXM1@MNXC3+2 MNXM4@MNXC3=1 MNXM9@MNXC4")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	b, err := Parse("  1  MNXM1 @ MNXC3  +  2 MNXM4@MNXC3  =  1 MNXM9@MNXC4  ")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected structurally identical equations, got %v and %v", a, b)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing at", "1 MNXM1 MNXC3 ="},
		{"missing equals", "1 MNXM1@MNXC3"},
		{"double equals", "1 MNXM1@MNXC3 = 1 MNXM9@MNXC4 = 1 MNXM9@MNXC4"},
		{"trailing garbage", "= 1 MNXM9@MNXC4 xyz"},
		{"missing coefficient", "MNXM1@MNXC3 ="},
		{"missing compartment", "1 MNXM1@ ="},
		{"unknown compound shape", "1 MNXR1@MNXC3 ="},
		{"stray character", "1 MNXM1@MNXC3 ; = "},
		{"bare dot coefficient", "1. MNXM1@MNXC3 ="},
		{"unterminated bracket", "(n MNXM1@MNXC3 ="},
		{"dangling plus", "1 MNXM1@MNXC3 + ="},
		{"empty input", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, input := range sampleEquations {
		t.Run(input, func(t *testing.T) {
			eq, err := Parse(input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			again, err := Parse(eq.String())
			if err != nil {
				t.Fatalf("reparse of %q failed: %v", eq.String(), err)
			}
			if !reflect.DeepEqual(eq, again) {
				t.Errorf("round trip changed equation: %v vs %v", eq, again)
			}
		})
	}
}

func TestResolve_EmptyEquation(t *testing.T) {
	result, err := Resolve("=", nil, nil)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty result, got %v", result)
	}
}

func TestResolve_Participants(t *testing.T) {
	compounds := map[string]int64{"MNXM1": 10, "MNXM4": 11, "MNXM9": 12}
	compartments := map[string]int64{"MNXC3": 1, "MNXC4": 2}

	result, err := Resolve("1 MNXM1@MNXC3 + 2 MNXM4@MNXC3 = 1 MNXM9@MNXC4", compounds, compartments)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	want := []ResolvedParticipant{
		{CompoundID: 10, CompartmentID: 1, Stoichiometry: "1", IsProduct: false},
		{CompoundID: 11, CompartmentID: 1, Stoichiometry: "2", IsProduct: false},
		{CompoundID: 12, CompartmentID: 2, Stoichiometry: "1", IsProduct: true},
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("got %v, want %v", result, want)
	}
}

// Every nonempty sample equation must parse cleanly and then fail
// resolution against empty lookup tables with a reference error,
// never a syntax error.
func TestResolve_EmptyMappings(t *testing.T) {
	for _, input := range sampleEquations {
		t.Run(input, func(t *testing.T) {
			_, err := Resolve(input, map[string]int64{}, map[string]int64{})
			var refErr *ReferenceError
			if !errors.As(err, &refErr) {
				t.Fatalf("expected *ReferenceError, got %v", err)
			}
		})
	}
}

func TestResolve_MissingCompartment(t *testing.T) {
	compounds := map[string]int64{"MNXM1": 10}

	_, err := Resolve("1 MNXM1@MNXC3 =", compounds, map[string]int64{})
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected *ReferenceError, got %v", err)
	}
	if refErr.Role != RoleCompartment {
		t.Errorf("expected compartment role, got %v", refErr.Role)
	}
	if refErr.Token != "MNXC3" {
		t.Errorf("expected token MNXC3, got %q", refErr.Token)
	}
}

func TestResolve_LookupsNotMutated(t *testing.T) {
	compounds := map[string]int64{"MNXM1": 10}
	compartments := map[string]int64{"MNXC3": 1}

	if _, err := Resolve("1 MNXM1@MNXC3 = 1 MNXM1@MNXC3", compounds, compartments); err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if len(compounds) != 1 || len(compartments) != 1 {
		t.Errorf("lookup tables were mutated: %v %v", compounds, compartments)
	}
}
