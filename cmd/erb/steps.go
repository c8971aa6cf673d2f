// Steps command lists the stored argument steps.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List argument steps",
	Args:  cobra.NoArgs,
	RunE:  runSteps,
}

func runSteps(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail(exitSysError, err)
	}
	defer backend.Detach()

	table, err := backend.GetTable(types.TableArgumentSteps)
	if err != nil {
		return fmt.Errorf("get argument steps table: %w", err)
	}

	entities, err := table.Fetch(nil)
	if err != nil {
		return fmt.Errorf("fetch argument steps: %w", err)
	}

	steps := make([]*types.ArgumentStep, len(entities))
	for i, entity := range entities {
		steps[i] = entity.(*types.ArgumentStep)
	}

	if flagJSON {
		return printJSON(steps)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTYPE\tARGUMENT\tSTATEMENT")
	for _, s := range steps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			types.StringValue(s.Name),
			types.StringValue(s.StepType),
			types.StringValue(s.ArgumentName),
			types.StringValue(s.Statement),
		)
	}
	return w.Flush()
}
