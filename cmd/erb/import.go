// Import command loads a rulebook document into the backend.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rulebook/internal/rulebook"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import <rulebook.json>",
	Short: "Import a rulebook document into the store",
	Long: `Import reads a rulebook JSON export and stores its language candidates
and argument steps. Records keep the IDs they carry in the document;
re-importing the same document overwrites the stored records.

Example:
  erb import effortless-rulebook.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	doc, err := rulebook.Load(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		fail(exitSysError, err)
	}
	defer backend.Detach()

	candidatesTable, err := backend.GetTable(types.TableCandidates)
	if err != nil {
		return fmt.Errorf("get candidates table: %w", err)
	}
	candidates := doc.Candidates()
	for i := range candidates {
		c := candidates[i]
		if _, err := candidatesTable.Set(c.CandidateID, &c); err != nil {
			return fmt.Errorf("store candidate %q: %w", types.StringValue(c.Name), err)
		}
	}

	stepsTable, err := backend.GetTable(types.TableArgumentSteps)
	if err != nil {
		return fmt.Errorf("get argument steps table: %w", err)
	}
	steps := doc.ArgumentSteps()
	for i := range steps {
		s := steps[i]
		if _, err := stepsTable.Set(s.StepID, &s); err != nil {
			return fmt.Errorf("store argument step %q: %w", types.StringValue(s.Name), err)
		}
	}

	fmt.Printf("Imported %d candidates and %d argument steps\n", len(candidates), len(steps))
	return nil
}
