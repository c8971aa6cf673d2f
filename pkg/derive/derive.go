// Package derive computes the derived fields of a language-candidate record.
//
// The derivations form a small DAG evaluated in level order:
//
//	Level 0: raw fields (supplied by the caller)
//	Level 1: CategoryContainsLanguage, HasGrammar, RelationshipToConcept,
//	         FamilyFeudQuestion
//	Level 2: IsFamilyFeudTopAnswer (uses CategoryContainsLanguage)
//	Level 3: FamilyFeudMismatch (uses IsFamilyFeudTopAnswer)
//
// Every function is pure and total over its declared inputs: absent text is
// the empty string, returned strings are freshly allocated per call, and no
// input is ever mutated. All functions are safe for concurrent use.
package derive

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// CategoryContainsLanguage reports whether the category mentions "language".
// The match is case-insensitive and matches substrings, not whole words.
// An empty category never matches.
func CategoryContainsLanguage(category string) bool {
	return strings.Contains(strings.ToLower(category), "language")
}

// HasGrammar reports whether the candidate has a grammar. A candidate has a
// grammar exactly when it has syntax.
func HasGrammar(hasSyntax bool) bool {
	return hasSyntax
}

// RelationshipToConcept classifies the candidate by its distance from the
// concept it names: distance 1 is the concept itself, anything else is a
// description of it.
func RelationshipToConcept(distance int) types.Relationship {
	if distance == 1 {
		return types.RelationshipMirrorOf
	}
	return types.RelationshipDescriptionOf
}

// FamilyFeudQuestion formats the survey question for a candidate.
// An absent name yields "Is  a language?" with two spaces; downstream
// graders compare answers byte-for-byte, so the spacing is load-bearing.
func FamilyFeudQuestion(name string) string {
	return fmt.Sprintf("Is %s a language?", name)
}

// IsFamilyFeudTopAnswer reports whether the candidate would be the top
// survey answer. All eight conditions must hold: the category mentions
// "language", the candidate has syntax, cannot be held, serializes its
// meaning, requires parsing, describes an ontology, has no identity, and
// sits at distance 2 from the concept.
func IsFamilyFeudTopAnswer(category string, hasSyntax, canBeHeld, meaningIsSerialized, requiresParsing, isOntologyDescriptor, hasIdentity bool, distance int) bool {
	return CategoryContainsLanguage(category) &&
		hasSyntax &&
		!canBeHeld &&
		meaningIsSerialized &&
		requiresParsing &&
		isOntologyDescriptor &&
		!hasIdentity &&
		distance == 2
}

// FamilyFeudMismatch reports disagreement between the computed top-answer
// verdict and the curated chosen-candidate flag. When the two agree there is
// no mismatch and ok is false. Otherwise it returns a message of the form
// "{name} {Is|Isn't} a Family Feud Language, but {Is|Is Not} marked as a
// 'Language Candidate.'".
func FamilyFeudMismatch(name string, isTopAnswer, chosen bool) (msg string, ok bool) {
	if isTopAnswer == chosen {
		return "", false
	}
	isWord := "Isn't"
	if isTopAnswer {
		isWord = "Is"
	}
	markedWord := "Is Not"
	if chosen {
		markedWord = "Is"
	}
	return fmt.Sprintf("%s %s a Family Feud Language, but %s marked as a 'Language Candidate.'",
		name, isWord, markedWord), true
}

// FamilyFeudMismatchFull computes the top-answer verdict from raw fields and
// delegates to FamilyFeudMismatch, letting a caller run the Level 2 and
// Level 3 derivations in one step.
func FamilyFeudMismatchFull(name, category string, hasSyntax, canBeHeld, meaningIsSerialized, requiresParsing, isOntologyDescriptor, hasIdentity bool, distance int, chosen bool) (msg string, ok bool) {
	top := IsFamilyFeudTopAnswer(category, hasSyntax, canBeHeld, meaningIsSerialized,
		requiresParsing, isOntologyDescriptor, hasIdentity, distance)
	return FamilyFeudMismatch(name, top, chosen)
}

// IsLanguage checks a candidate against the rulebook's core language
// definition: syntax, parsing, serialized meaning, and ontology description
// must all hold.
func IsLanguage(c *types.Candidate) bool {
	return types.BoolValue(c.HasSyntax) &&
		types.BoolValue(c.RequiresParsing) &&
		types.BoolValue(c.MeaningIsSerialized) &&
		types.BoolValue(c.IsOntologyDescriptor)
}
