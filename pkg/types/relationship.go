package types

import (
	"encoding/json"
	"fmt"
)

// Relationship classifies how a candidate relates to the concept it names:
// either it is the concept (a mirror) or it describes the concept.
type Relationship int

const (
	// RelationshipDescriptionOf means the candidate describes the concept.
	RelationshipDescriptionOf Relationship = iota
	// RelationshipMirrorOf means the candidate is the concept itself.
	RelationshipMirrorOf
)

// Display strings used in record JSON and human output.
const (
	relationshipDescriptionOf = "IsDescriptionOf"
	relationshipMirrorOf      = "IsMirrorOf"
)

// String returns the display string for the relationship.
func (r Relationship) String() string {
	if r == RelationshipMirrorOf {
		return relationshipMirrorOf
	}
	return relationshipDescriptionOf
}

// MarshalJSON encodes the relationship as its display string.
func (r Relationship) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a relationship from its display string.
func (r *Relationship) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case relationshipMirrorOf:
		*r = RelationshipMirrorOf
	case relationshipDescriptionOf:
		*r = RelationshipDescriptionOf
	default:
		return fmt.Errorf("unknown relationship %q", s)
	}
	return nil
}
