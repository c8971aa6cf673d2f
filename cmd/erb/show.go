// Show command displays one candidate with all raw and derived fields.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rulebook/pkg/derive"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <candidate-id>",
	Short: "Show a candidate with computed fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail(exitSysError, err)
	}
	defer backend.Detach()

	table, err := backend.GetTable(types.TableCandidates)
	if err != nil {
		return fmt.Errorf("get candidates table: %w", err)
	}

	raw, err := table.Get(args[0])
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("candidate %q not found", args[0])
		}
		return fmt.Errorf("get candidate: %w", err)
	}
	c := raw.(*types.Candidate)

	evaluated := types.Evaluated{Candidate: *c, Derived: derive.Evaluate(c)}

	if flagJSON {
		return printJSON(evaluated)
	}

	fmt.Println("candidate:", c.CandidateID)
	fmt.Println("  name:                       ", types.StringValue(c.Name))
	fmt.Println("  category:                   ", types.StringValue(c.Category))
	fmt.Println("  category_contains_language: ", evaluated.CategoryContainsLanguage)
	fmt.Println("  has_grammar:                ", evaluated.HasGrammar)
	fmt.Println("  relationship_to_concept:    ", evaluated.RelationshipToConcept)
	fmt.Println("  family_feud_question:       ", evaluated.FamilyFeudQuestion)
	fmt.Println("  is_a_family_feud_top_answer:", evaluated.IsFamilyFeudTopAnswer)
	fmt.Println("  family_feud_mismatch:       ", dash(evaluated.FamilyFeudMismatch))
	fmt.Println("  is_language:                ", derive.IsLanguage(c))
	return nil
}
