package sqlite

// Schema DDL for the rulebook tables. Columns other than the primary key are
// nullable: record files carry JSON null for unset raw fields.
const (
	createCandidates = `CREATE TABLE candidates (
    candidate_id TEXT PRIMARY KEY,
    name TEXT,
    category TEXT,
    has_syntax INTEGER,
    can_be_held INTEGER,
    meaning_is_serialized INTEGER,
    requires_parsing INTEGER,
    is_ontology_descriptor INTEGER,
    has_identity INTEGER,
    chosen_language_candidate INTEGER,
    distance_from_concept INTEGER,
    sort_order INTEGER
);`

	createArgumentSteps = `CREATE TABLE argument_steps (
    step_id TEXT PRIMARY KEY,
    name TEXT,
    argument_name TEXT,
    argument_category TEXT,
    step_type TEXT,
    statement TEXT,
    formalization TEXT,
    related_candidate_name TEXT,
    related_candidate_id TEXT,
    evidence TEXT,
    notes TEXT
);`

	createCandidateSortIndex = `CREATE INDEX idx_candidates_sort_order ON candidates(sort_order);`
)

// schemaStatements lists the DDL executed on Attach, in order.
var schemaStatements = []string{
	createCandidates,
	createArgumentSteps,
	createCandidateSortIndex,
}
