package mnx

import (
	"reflect"
	"strings"
	"testing"
)

const chemPropSample = `#ID	name	reference	formula	charge	mass	InChI	InChIKey	SMILES
MNXM1	H(+)	chebi:15378	H	1	1.008	InChI=1S/p+1	GPRLSGONYQIRFK-UHFFFAOYSA-N	[H+]
MNXM2	water	chebi:15377	H2O	0	18.0153	InChI=1S/H2O/h1H2	XLYOFNOQVPJJNP-UHFFFAOYSA-N	O
MNXM162258	unknown	mnx:MNXM162258						
`

func TestReadChemProp(t *testing.T) {
	rows, err := ReadChemProp(strings.NewReader(chemPropSample))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.ID != "MNXM1" {
		t.Errorf("expected MNXM1, got %s", first.ID)
	}
	if first.Reference != (Reference{Prefix: "chebi", Identifier: "15378"}) {
		t.Errorf("unexpected reference %v", first.Reference)
	}
	if first.Charge == nil || *first.Charge != 1 {
		t.Errorf("unexpected charge %v", first.Charge)
	}
	if first.Mass == nil || *first.Mass != 1.008 {
		t.Errorf("unexpected mass %v", first.Mass)
	}

	// The "mnx" prefix folds into the table's own namespace and empty
	// numeric fields stay unset.
	last := rows[2]
	if last.Reference != (Reference{Prefix: ChemicalPrefix, Identifier: "MNXM162258"}) {
		t.Errorf("unexpected reference %v", last.Reference)
	}
	if last.Charge != nil || last.Mass != nil {
		t.Errorf("expected unset charge and mass, got %v %v", last.Charge, last.Mass)
	}
}

func TestReadChemProp_BadCharge(t *testing.T) {
	input := "MNXM1	H(+)	chebi:15378	H	xyz		InChI=1S/p+1		[H+]\n"
	if _, err := ReadChemProp(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for non-numeric charge")
	}
}

func TestReadCompProp(t *testing.T) {
	input := `#ID	name	reference
MNXC3	cytosol	go:0005829
MNXC2	extracellular	cco:CCO-OUT
`
	rows, err := ReadCompProp(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := []Compartment{
		{ID: "MNXC3", Name: "cytosol", Reference: Reference{Prefix: "go", Identifier: "0005829"}},
		{ID: "MNXC2", Name: "extracellular", Reference: Reference{Prefix: "cco", Identifier: "CCO-OUT"}},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %v, want %v", rows, want)
	}
}

func TestReadReacProp(t *testing.T) {
	input := `#ID	mnx_equation	reference	classifs	is_balanced	is_transport
MNXR94688	1 MNXM1@MNXD1 = 1 MNXM1@MNXD2	bigg.reaction:Htex	1.1.1.1;1.1.1.2	B	T
MNXR96123	1 MNXM2@MNXC3 = 1 MNXM2@MNXC2	kegg.reaction:R00001		false	false
`
	rows, err := ReadReacProp(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Equation != "1 MNXM1@MNXD1 = 1 MNXM1@MNXD2" {
		t.Errorf("unexpected equation %q", first.Equation)
	}
	if !reflect.DeepEqual(first.ECNumbers, []string{"1.1.1.1", "1.1.1.2"}) {
		t.Errorf("unexpected EC numbers %v", first.ECNumbers)
	}
	if !first.IsBalanced || !first.IsTransport {
		t.Errorf("expected balanced transport reaction, got %+v", first)
	}
	if rows[1].ECNumbers != nil {
		t.Errorf("expected no EC numbers, got %v", rows[1].ECNumbers)
	}
	if rows[1].IsBalanced || rows[1].IsTransport {
		t.Errorf("expected plain reaction, got %+v", rows[1])
	}
}

func TestReadCrossRefs(t *testing.T) {
	input := `#source	ID	description
chebi:15378	MNXM1	H(+)|hydron|proton
kegg.compound:C00080	MNXM1	H+
seed.compound:cpd00067	MNXM1
`
	rows, err := ReadCrossRefs(strings.NewReader(input), ChemicalPrefix)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Source != (Reference{Prefix: "chebi", Identifier: "15378"}) {
		t.Errorf("unexpected source %v", rows[0].Source)
	}

	grouped := GroupCrossRefs(rows)
	if len(grouped["MNXM1"]) != 3 {
		t.Errorf("expected 3 grouped refs, got %d", len(grouped["MNXM1"]))
	}
}

func TestSplitNames(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"H(+)|hydron|proton", []string{"H(+)", "hydron", "proton"}},
		{" water | H2O ", []string{"water", "H2O"}},
		{"", nil},
		{"||", nil},
		{"single", []string{"single"}},
	}
	for _, tc := range cases {
		if got := SplitNames(tc.input); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitNames(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseReference(t *testing.T) {
	cases := []struct {
		input string
		want  Reference
	}{
		{"chebi:15378", Reference{Prefix: "chebi", Identifier: "15378"}},
		{"mnx:MNXM1", Reference{Prefix: ChemicalPrefix, Identifier: "MNXM1"}},
		{"MNXM1", Reference{Prefix: ChemicalPrefix, Identifier: "MNXM1"}},
		{"cco:CCO-OUT:x", Reference{Prefix: "cco", Identifier: "CCO-OUT:x"}},
	}
	for _, tc := range cases {
		if got := ParseReference(tc.input, ChemicalPrefix); got != tc.want {
			t.Errorf("ParseReference(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
