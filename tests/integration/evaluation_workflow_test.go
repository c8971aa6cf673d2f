// Integration tests covering the store-then-evaluate workflow: candidates
// are persisted through the SQLite backend, survive a reattach via JSONL,
// and evaluate to the expected derived fields.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rulebook/internal/sqlite"
	"github.com/mesh-intelligence/rulebook/pkg/derive"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

func topAnswerCandidate(name string, chosen bool) *types.Candidate {
	return &types.Candidate{
		Name:                    strp(name),
		Category:                strp("Programming Language"),
		HasSyntax:               boolp(true),
		CanBeHeld:               boolp(false),
		MeaningIsSerialized:     boolp(true),
		RequiresParsing:         boolp(true),
		IsOntologyDescriptor:    boolp(true),
		HasIdentity:             boolp(false),
		ChosenLanguageCandidate: boolp(chosen),
		DistanceFromConcept:     intp(2),
	}
}

func TestStoredCandidateEvaluation(t *testing.T) {
	b, _ := setupStore(t)
	tbl := mustGetTable(t, b, types.TableCandidates)

	id := mustSetCandidate(t, tbl, topAnswerCandidate("Python", false))
	stored := mustGetCandidate(t, tbl, id)

	d := derive.Evaluate(stored)
	assert.True(t, d.IsFamilyFeudTopAnswer)
	assert.Equal(t, "Is Python a language?", d.FamilyFeudQuestion)
	require.NotNil(t, d.FamilyFeudMismatch)
	assert.Equal(t,
		"Python Is a Family Feud Language, but Is Not marked as a 'Language Candidate.'",
		*d.FamilyFeudMismatch)
}

func TestEvaluationSurvivesReattach(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(cfg))
	tbl := mustGetTable(t, b, types.TableCandidates)

	id := mustSetCandidate(t, tbl, topAnswerCandidate("Go", true))
	require.NoError(t, b.Detach())

	b2 := sqlite.NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	tbl2 := mustGetTable(t, b2, types.TableCandidates)
	stored := mustGetCandidate(t, tbl2, id)

	// Derived fields are never persisted; they are recomputed from the raw
	// fields that round-tripped through JSONL.
	d := derive.Evaluate(stored)
	assert.True(t, d.IsFamilyFeudTopAnswer)
	assert.Nil(t, d.FamilyFeudMismatch, "verdict agrees with the chosen flag")
}

func TestMixedBatchEvaluation(t *testing.T) {
	b, _ := setupStore(t)
	tbl := mustGetTable(t, b, types.TableCandidates)

	lang := topAnswerCandidate("Python", true)
	lang.SortOrder = intp(1)
	mustSetCandidate(t, tbl, lang)

	rock := &types.Candidate{
		Name:                    strp("Rock"),
		Category:                strp("Mineral"),
		CanBeHeld:               boolp(true),
		ChosenLanguageCandidate: boolp(true),
		DistanceFromConcept:     intp(1),
		SortOrder:               intp(2),
	}
	mustSetCandidate(t, tbl, rock)

	entities, err := tbl.Fetch(nil)
	require.NoError(t, err)
	require.Len(t, entities, 2)

	candidates := make([]types.Candidate, len(entities))
	for i, e := range entities {
		candidates[i] = *e.(*types.Candidate)
	}
	evaluated := derive.EvaluateAll(candidates)

	assert.Equal(t, "Python", types.StringValue(evaluated[0].Name))
	assert.True(t, evaluated[0].IsFamilyFeudTopAnswer)
	assert.Nil(t, evaluated[0].FamilyFeudMismatch)

	assert.Equal(t, "Rock", types.StringValue(evaluated[1].Name))
	assert.False(t, evaluated[1].IsFamilyFeudTopAnswer)
	require.NotNil(t, evaluated[1].FamilyFeudMismatch)
	assert.Equal(t,
		"Rock Isn't a Family Feud Language, but Is marked as a 'Language Candidate.'",
		*evaluated[1].FamilyFeudMismatch)
	assert.Equal(t, types.RelationshipMirrorOf, evaluated[1].RelationshipToConcept)
}
