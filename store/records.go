package store

// Name is one name of a component in a given namespace.
type Name struct {
	NamespaceID int64
	Name        string
}

// Annotation is one cross-database identifier of a component.
type Annotation struct {
	NamespaceID int64
	QualifierID int64
	Identifier  string
}

// CompartmentRecord is a compartment with its names and annotations,
// ready for insertion.
type CompartmentRecord struct {
	Names       []Name
	Annotations []Annotation
}

// CompoundRecord is a compound with its structural properties, names,
// and annotations, ready for insertion. Pointer fields are stored as
// NULL when unset.
type CompoundRecord struct {
	InChI       string
	InChIKey    string
	SMILES      string
	Formula     string
	Charge      *float64
	Mass        *float64
	Names       []Name
	Annotations []Annotation
}

// ParticipantRecord is one stoichiometric term of a reaction. The
// stoichiometry is literal text and may be symbolic.
type ParticipantRecord struct {
	CompoundID    int64
	CompartmentID int64
	Stoichiometry string
	IsProduct     bool
}

// ReactionRecord is a reaction with its participants, names, and
// annotations, ready for insertion.
type ReactionRecord struct {
	Participants []ParticipantRecord
	Names        []Name
	Annotations  []Annotation
}
