// Eval command computes derived fields for record files. This is the
// take-test workflow: every record file in the input directory is evaluated
// and an answer file with raw plus derived fields is written to the output
// directory.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rulebook/pkg/derive"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

var evalCmd = &cobra.Command{
	Use:   "eval <input-dir> <output-dir>",
	Short: "Evaluate derived fields for record files",
	Long: `Eval reads every .json file in the input directory (files prefixed with
"_" are metadata and are skipped), computes the derived fields for each
record, and writes answer files with the same names to the output directory.

All files are attempted; if any file fails, eval reports every failure and
exits nonzero.

Example:
  erb eval testing/blank-tests test-answers`,
	Args: cobra.ExactArgs(2),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	inputDir, outputDir := args[0], args[1]

	matches, err := filepath.Glob(filepath.Join(inputDir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", inputDir, err)
	}
	sort.Strings(matches)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	var (
		failures     []string
		fileCount    int
		totalRecords int
	)
	for _, inputPath := range matches {
		name := filepath.Base(inputPath)
		if strings.HasPrefix(name, "_") {
			continue
		}

		count, err := evalFile(inputPath, filepath.Join(outputDir, name))
		if err != nil {
			msg := fmt.Sprintf("%s: %v", name, err)
			fmt.Fprintln(os.Stderr, "ERROR:", msg)
			failures = append(failures, msg)
			continue
		}

		fmt.Printf("  %s: %d records evaluated\n", name, count)
		fileCount++
		totalRecords += count
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d file(s) failed to evaluate", len(failures))
	}

	fmt.Printf("Evaluated %d files, %d total records\n", fileCount, totalRecords)
	return nil
}

// evalFile reads one record file, evaluates every record, and writes the
// answer file. Returns the number of records evaluated.
func evalFile(inputPath, outputPath string) (int, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("reading records: %w", err)
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return 0, fmt.Errorf("parsing records: %w", err)
	}

	evaluated := derive.EvaluateAll(candidates)

	out, err := json.MarshalIndent(evaluated, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshaling answers: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return 0, fmt.Errorf("writing answers: %w", err)
	}
	return len(evaluated), nil
}
