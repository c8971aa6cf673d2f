package rulebook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

const sampleDocument = `{
  "LanguageCandidates": {
    "data": [
      {
        "LanguageCandidateId": "cand-1",
        "Name": "Python",
        "Category": "Programming Language",
        "HasSyntax": true,
        "CanBeHeld": false,
        "MeaningIsSerialized": true,
        "RequiresParsing": true,
        "IsOntologyDescriptor": true,
        "HasIdentity": false,
        "ChosenLanguageCandidate": true,
        "DistanceFromConcept": 2,
        "SortOrder": 1
      },
      {
        "LanguageCandidateId": "cand-2",
        "Name": "Rock",
        "Category": null,
        "CanBeHeld": true
      }
    ]
  },
  "IsEverythingALanguage": {
    "data": [
      {
        "IsEverythingALanguageId": "step-1",
        "Name": "Premise 1",
        "ArgumentName": "Everything is a language",
        "StepType": "premise",
        "Statement": "All structured meaning requires a carrier.",
        "RelatedCandidateId": "cand-1"
      }
    ]
  }
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rulebook.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))
	return path
}

func TestLoadDocument(t *testing.T) {
	doc, err := Load(writeSample(t))
	require.NoError(t, err)

	candidates := doc.Candidates()
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, "cand-1", first.CandidateID)
	assert.Equal(t, "Python", types.StringValue(first.Name))
	assert.True(t, types.BoolValue(first.ChosenLanguageCandidate))
	assert.Equal(t, 2, types.IntValue(first.DistanceFromConcept))

	second := candidates[1]
	assert.Nil(t, second.Category, "null keeps the pointer nil")
	assert.Nil(t, second.HasSyntax, "missing keeps the pointer nil")
	assert.True(t, types.BoolValue(second.CanBeHeld))

	steps := doc.ArgumentSteps()
	require.Len(t, steps, 1)
	assert.Equal(t, "step-1", steps[0].StepID)
	assert.Equal(t, "premise", types.StringValue(steps[0].StepType))
	assert.Equal(t, "cand-1", types.StringValue(steps[0].RelatedCandidateID))
}

func TestLoadDocumentErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
