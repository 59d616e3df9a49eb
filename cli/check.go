// ABOUTME: Check command validating utilization thresholds for CI/CD
// ABOUTME: Sizes a scenario and fails when any dimension runs too hot

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"serversizer/client"
	"serversizer/models"
)

var utilizationThreshold int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check planned utilization against a threshold",
	Long: `Size a scenario and exit non-zero if any dimension's planned
utilization exceeds the threshold.

Exit codes:
  0 - All dimensions within threshold
  1 - One or more dimensions exceeded the threshold
  2 - Error (invalid scenario, connectivity, engine failure)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runCheck(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "Scenario JSON file (required)")
	checkCmd.Flags().IntVar(&utilizationThreshold, "threshold", 90, "Utilization threshold percentage")
	checkCmd.MarkFlagRequired("file")
}

// checkResult represents the result of one dimension check.
type checkResult struct {
	Dimension string  `json:"dimension"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Passed    bool    `json:"passed"`
}

// runCheck sizes the scenario and evaluates thresholds.
func runCheck(ctx context.Context, w io.Writer) int {
	if utilizationThreshold < 0 || utilizationThreshold > 100 {
		fmt.Fprintln(w, "Error: --threshold must be between 0 and 100")
		return 2
	}

	req, err := loadScenario(scenarioFile)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	c := client.New(GetAPIURL())
	result, err := c.Size(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results := performChecks(result, float64(utilizationThreshold))

	if IsJSONOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(results)
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	for _, r := range results {
		if !r.Passed {
			return 1
		}
	}
	return 0
}

// performChecks evaluates each dimension against the threshold.
func performChecks(result *models.SizingResult, threshold float64) []checkResult {
	dims := []struct {
		name   string
		report models.DimensionReport
	}{
		{models.DimensionCompute, result.Compute},
		{models.DimensionMemory, result.Memory},
		{models.DimensionStorage, result.Storage},
	}

	checks := make([]checkResult, 0, len(dims))
	for _, d := range dims {
		checks = append(checks, checkResult{
			Dimension: d.name,
			Value:     d.report.UtilizationPct,
			Threshold: threshold,
			Passed:    d.report.UtilizationPct <= threshold,
		})
	}
	return checks
}

// formatCheckHuman formats check results for terminal display.
func formatCheckHuman(results []checkResult) string {
	var out string
	failed := 0

	for _, r := range results {
		symbol := styleOK.Render("✓")
		if !r.Passed {
			symbol = styleCritical.Render("✗")
			failed++
		}
		out += fmt.Sprintf("%s %s: %.1f%% (threshold: %.0f%%)\n",
			symbol, r.Dimension, r.Value, r.Threshold)
	}

	if failed > 0 {
		out += "\n" + styleCritical.Render(fmt.Sprintf("FAILED: %d dimension(s) exceeded threshold", failed))
	} else {
		out += "\n" + styleOK.Render(fmt.Sprintf("PASSED: all %d dimensions within threshold", len(results)))
	}

	return out
}
