// Package rulebook parses ERB rulebook documents: the JSON export format
// that groups records by table under PascalCase keys. Documents are the
// interchange format for imports; storage and answer files use the
// snake_case record forms in pkg/types.
package rulebook

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// Document is the top-level structure of a rulebook JSON export.
type Document struct {
	LanguageCandidates struct {
		Data []documentCandidate `json:"data"`
	} `json:"LanguageCandidates"`
	IsEverythingALanguage struct {
		Data []documentStep `json:"data"`
	} `json:"IsEverythingALanguage"`
}

// documentCandidate is a language candidate in document key style.
type documentCandidate struct {
	LanguageCandidateID     string  `json:"LanguageCandidateId"`
	Name                    *string `json:"Name"`
	Category                *string `json:"Category"`
	HasSyntax               *bool   `json:"HasSyntax"`
	CanBeHeld               *bool   `json:"CanBeHeld"`
	MeaningIsSerialized     *bool   `json:"MeaningIsSerialized"`
	RequiresParsing         *bool   `json:"RequiresParsing"`
	IsOntologyDescriptor    *bool   `json:"IsOntologyDescriptor"`
	HasIdentity             *bool   `json:"HasIdentity"`
	ChosenLanguageCandidate *bool   `json:"ChosenLanguageCandidate"`
	DistanceFromConcept     *int    `json:"DistanceFromConcept"`
	SortOrder               *int    `json:"SortOrder"`
}

// documentStep is an argument step in document key style.
type documentStep struct {
	IsEverythingALanguageID string  `json:"IsEverythingALanguageId"`
	Name                    *string `json:"Name"`
	ArgumentName            *string `json:"ArgumentName"`
	ArgumentCategory        *string `json:"ArgumentCategory"`
	StepType                *string `json:"StepType"`
	Statement               *string `json:"Statement"`
	Formalization           *string `json:"Formalization"`
	RelatedCandidateName    *string `json:"RelatedCandidateName"`
	RelatedCandidateID      *string `json:"RelatedCandidateId"`
	EvidenceFromRulebook    *string `json:"EvidenceFromRulebook"`
	Notes                   *string `json:"Notes"`
}

// Load reads and parses a rulebook document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rulebook: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing rulebook: %w", err)
	}
	return &doc, nil
}

// Candidates converts the document's language candidates to entity form.
func (d *Document) Candidates() []types.Candidate {
	out := make([]types.Candidate, 0, len(d.LanguageCandidates.Data))
	for _, dc := range d.LanguageCandidates.Data {
		out = append(out, types.Candidate{
			CandidateID:             dc.LanguageCandidateID,
			Name:                    dc.Name,
			Category:                dc.Category,
			HasSyntax:               dc.HasSyntax,
			CanBeHeld:               dc.CanBeHeld,
			MeaningIsSerialized:     dc.MeaningIsSerialized,
			RequiresParsing:         dc.RequiresParsing,
			IsOntologyDescriptor:    dc.IsOntologyDescriptor,
			HasIdentity:             dc.HasIdentity,
			ChosenLanguageCandidate: dc.ChosenLanguageCandidate,
			DistanceFromConcept:     dc.DistanceFromConcept,
			SortOrder:               dc.SortOrder,
		})
	}
	return out
}

// ArgumentSteps converts the document's argument steps to entity form.
func (d *Document) ArgumentSteps() []types.ArgumentStep {
	out := make([]types.ArgumentStep, 0, len(d.IsEverythingALanguage.Data))
	for _, ds := range d.IsEverythingALanguage.Data {
		out = append(out, types.ArgumentStep{
			StepID:               ds.IsEverythingALanguageID,
			Name:                 ds.Name,
			ArgumentName:         ds.ArgumentName,
			ArgumentCategory:     ds.ArgumentCategory,
			StepType:             ds.StepType,
			Statement:            ds.Statement,
			Formalization:        ds.Formalization,
			RelatedCandidateName: ds.RelatedCandidateName,
			RelatedCandidateID:   ds.RelatedCandidateID,
			Evidence:             ds.EvidenceFromRulebook,
			Notes:                ds.Notes,
		})
	}
	return out
}
