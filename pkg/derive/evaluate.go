package derive

import "github.com/mesh-intelligence/rulebook/pkg/types"

// Evaluate computes all derived fields for a candidate in DAG level order.
// The candidate is not modified; nil pointer fields are read as their zero
// values (empty string, false, 0).
func Evaluate(c *types.Candidate) types.Derived {
	name := types.StringValue(c.Name)
	category := types.StringValue(c.Category)

	// Level 1
	d := types.Derived{
		CategoryContainsLanguage: CategoryContainsLanguage(category),
		HasGrammar:               HasGrammar(types.BoolValue(c.HasSyntax)),
		RelationshipToConcept:    RelationshipToConcept(types.IntValue(c.DistanceFromConcept)),
		FamilyFeudQuestion:       FamilyFeudQuestion(name),
	}

	// Level 2
	d.IsFamilyFeudTopAnswer = IsFamilyFeudTopAnswer(
		category,
		types.BoolValue(c.HasSyntax),
		types.BoolValue(c.CanBeHeld),
		types.BoolValue(c.MeaningIsSerialized),
		types.BoolValue(c.RequiresParsing),
		types.BoolValue(c.IsOntologyDescriptor),
		types.BoolValue(c.HasIdentity),
		types.IntValue(c.DistanceFromConcept),
	)

	// Level 3
	if msg, ok := FamilyFeudMismatch(name, d.IsFamilyFeudTopAnswer,
		types.BoolValue(c.ChosenLanguageCandidate)); ok {
		d.FamilyFeudMismatch = &msg
	}

	return d
}

// EvaluateAll evaluates a batch of candidates, pairing each with its derived
// fields in input order.
func EvaluateAll(candidates []types.Candidate) []types.Evaluated {
	out := make([]types.Evaluated, len(candidates))
	for i := range candidates {
		out[i] = types.Evaluated{
			Candidate: candidates[i],
			Derived:   Evaluate(&candidates[i]),
		}
	}
	return out
}
