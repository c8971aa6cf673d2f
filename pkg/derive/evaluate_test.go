package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
func intp(i int) *int       { return &i }

func TestEvaluateTopAnswerCandidate(t *testing.T) {
	c := &types.Candidate{
		CandidateID:             "cand-1",
		Name:                    strp("Python"),
		Category:                strp("Programming Language"),
		HasSyntax:               boolp(true),
		CanBeHeld:               boolp(false),
		MeaningIsSerialized:     boolp(true),
		RequiresParsing:         boolp(true),
		IsOntologyDescriptor:    boolp(true),
		HasIdentity:             boolp(false),
		ChosenLanguageCandidate: boolp(true),
		DistanceFromConcept:     intp(2),
	}

	d := Evaluate(c)

	assert.True(t, d.CategoryContainsLanguage)
	assert.True(t, d.HasGrammar)
	assert.Equal(t, types.RelationshipDescriptionOf, d.RelationshipToConcept)
	assert.Equal(t, "Is Python a language?", d.FamilyFeudQuestion)
	assert.True(t, d.IsFamilyFeudTopAnswer)
	assert.Nil(t, d.FamilyFeudMismatch, "verdict agrees with the chosen flag")
}

func TestEvaluateMismatchCandidate(t *testing.T) {
	// A rock marked as a language candidate.
	c := &types.Candidate{
		CandidateID:             "cand-2",
		Name:                    strp("Rock"),
		Category:                strp("Mineral"),
		HasSyntax:               boolp(false),
		CanBeHeld:               boolp(true),
		ChosenLanguageCandidate: boolp(true),
		DistanceFromConcept:     intp(1),
	}

	d := Evaluate(c)

	assert.False(t, d.CategoryContainsLanguage)
	assert.False(t, d.HasGrammar)
	assert.Equal(t, types.RelationshipMirrorOf, d.RelationshipToConcept)
	assert.False(t, d.IsFamilyFeudTopAnswer)
	require.NotNil(t, d.FamilyFeudMismatch)
	assert.Equal(t,
		"Rock Isn't a Family Feud Language, but Is marked as a 'Language Candidate.'",
		*d.FamilyFeudMismatch)
}

func TestEvaluateAllNilFields(t *testing.T) {
	// A completely empty record must evaluate without panicking: absent text
	// reads as empty string, absent booleans as false, absent ints as 0.
	d := Evaluate(&types.Candidate{})

	assert.False(t, d.CategoryContainsLanguage)
	assert.False(t, d.HasGrammar)
	assert.Equal(t, types.RelationshipDescriptionOf, d.RelationshipToConcept)
	assert.Equal(t, "Is  a language?", d.FamilyFeudQuestion)
	assert.False(t, d.IsFamilyFeudTopAnswer)
	assert.Nil(t, d.FamilyFeudMismatch)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	name := "Python"
	c := &types.Candidate{Name: &name, ChosenLanguageCandidate: boolp(true)}

	_ = Evaluate(c)

	assert.Equal(t, "Python", *c.Name)
	assert.True(t, *c.ChosenLanguageCandidate)
	assert.Nil(t, c.Category)
}

func TestEvaluateAll(t *testing.T) {
	candidates := []types.Candidate{
		{CandidateID: "a", Name: strp("Go"), Category: strp("Programming Language")},
		{CandidateID: "b", Name: strp("Granite"), Category: strp("Mineral")},
	}

	out := EvaluateAll(candidates)
	require.Len(t, out, 2)

	assert.Equal(t, "a", out[0].CandidateID)
	assert.True(t, out[0].CategoryContainsLanguage)
	assert.Equal(t, "Is Go a language?", out[0].FamilyFeudQuestion)

	assert.Equal(t, "b", out[1].CandidateID)
	assert.False(t, out[1].CategoryContainsLanguage)
}
