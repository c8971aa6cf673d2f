package types

// ArgumentStep represents one step of the rulebook's "is everything a
// language" argument. Steps carry no derived fields; they are stored and
// listed as supporting evidence alongside the candidates they reference.
type ArgumentStep struct {
	StepID               string  `json:"step_id"` // UUID v7, generated on creation.
	Name                 *string `json:"name"`
	ArgumentName         *string `json:"argument_name"`
	ArgumentCategory     *string `json:"argument_category"`
	StepType             *string `json:"step_type"`
	Statement            *string `json:"statement"`
	Formalization        *string `json:"formalization"`
	RelatedCandidateName *string `json:"related_candidate_name"`
	RelatedCandidateID   *string `json:"related_candidate_id"`
	Evidence             *string `json:"evidence_from_rulebook"`
	Notes                *string `json:"notes"`
}
