// List command shows all candidates with their derived fields.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rulebook/pkg/derive"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates with computed fields",
	Long: `List fetches all language candidates in sort order and displays them with
their derived fields evaluated.

Example:
  erb list
  erb list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail(exitSysError, err)
	}
	defer backend.Detach()

	candidates, err := fetchCandidates(backend)
	if err != nil {
		return err
	}

	evaluated := derive.EvaluateAll(candidates)

	if flagJSON {
		return printJSON(evaluated)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tRELATIONSHIP\tTOP ANSWER\tMISMATCH")
	for _, e := range evaluated {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n",
			types.StringValue(e.Name),
			types.StringValue(e.Category),
			e.RelationshipToConcept,
			e.IsFamilyFeudTopAnswer,
			dash(e.FamilyFeudMismatch),
		)
	}
	return w.Flush()
}
