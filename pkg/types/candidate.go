package types

// Candidate represents one language-candidate record in the rulebook.
// Raw fields use pointer types because record files carry JSON null for
// unset values; absent text is treated as the empty string when derived
// fields are computed.
type Candidate struct {
	CandidateID             string  `json:"language_candidate_id"` // UUID v7, generated on creation.
	Name                    *string `json:"name"`
	Category                *string `json:"category"`
	HasSyntax               *bool   `json:"has_syntax"`
	CanBeHeld               *bool   `json:"can_be_held"`
	MeaningIsSerialized     *bool   `json:"meaning_is_serialized"`
	RequiresParsing         *bool   `json:"requires_parsing"`
	IsOntologyDescriptor    *bool   `json:"is_ontology_descriptor"`
	HasIdentity             *bool   `json:"has_identity"`
	ChosenLanguageCandidate *bool   `json:"chosen_language_candidate"`
	DistanceFromConcept     *int    `json:"distance_from_concept"`
	SortOrder               *int    `json:"sort_order"`
}

// Derived holds the computed fields of a candidate, in DAG level order.
type Derived struct {
	CategoryContainsLanguage bool         `json:"category_contains_language"`
	HasGrammar               bool         `json:"has_grammar"`
	RelationshipToConcept    Relationship `json:"relationship_to_concept"`
	FamilyFeudQuestion       string       `json:"family_feud_question"`
	IsFamilyFeudTopAnswer    bool         `json:"is_a_family_feud_top_answer"`
	FamilyFeudMismatch       *string      `json:"family_feud_mismatch"`
}

// Evaluated pairs a candidate's raw fields with its derived fields. This is
// the record shape written to answer files and printed by the CLI.
type Evaluated struct {
	Candidate
	Derived
}

// StringValue safely dereferences a *string, returning "" if nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// BoolValue safely dereferences a *bool, returning false if nil.
func BoolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// IntValue safely dereferences a *int, returning 0 if nil.
func IntValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
