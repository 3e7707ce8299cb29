package equation

// ResolvedParticipant is a participant whose compound and compartment
// tokens have been translated into internal identifiers. The
// stoichiometry is carried through as literal text.
type ResolvedParticipant struct {
	CompoundID    int64
	CompartmentID int64
	Stoichiometry string
	IsProduct     bool
}

// Resolve parses an equation and resolves every participant against
// the supplied lookup tables. The result lists substrates first, then
// products, each in original left-to-right order; callers may depend
// on that ordering for deterministic batch insertion.
//
// A token missing from its lookup table fails the whole equation with
// a *ReferenceError; no partial list is returned. The lookup tables
// are never mutated.
func Resolve(input string, compounds, compartments map[string]int64) ([]ResolvedParticipant, error) {
	eq, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return eq.Resolve(compounds, compartments)
}

// Resolve translates the participants of an already parsed equation.
// See the package-level Resolve for the contract.
func (eq *Equation) Resolve(compounds, compartments map[string]int64) ([]ResolvedParticipant, error) {
	result := make([]ResolvedParticipant, 0, len(eq.Substrates)+len(eq.Products))
	for _, side := range []struct {
		participants []Participant
		isProduct    bool
	}{
		{eq.Substrates, false},
		{eq.Products, true},
	} {
		for _, part := range side.participants {
			compoundID, ok := compounds[part.Compound]
			if !ok {
				return nil, &ReferenceError{Token: part.Compound, Role: RoleCompound}
			}
			compartmentID, ok := compartments[part.Compartment]
			if !ok {
				return nil, &ReferenceError{Token: part.Compartment, Role: RoleCompartment}
			}
			result = append(result, ResolvedParticipant{
				CompoundID:    compoundID,
				CompartmentID: compartmentID,
				Stoichiometry: part.Coefficient,
				IsProduct:     side.isProduct,
			})
		}
	}
	return result, nil
}
