// ABOUTME: Size command computing node counts for a workload scenario
// ABOUTME: Reads a scenario file and sizes via the API or locally

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
	"serversizer/services"
)

var (
	scenarioFile string
	sizeLocal    bool
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Compute the node count for a workload scenario",
	Long: `Compute how many servers a workload scenario requires.

The scenario file is a JSON document with workloads, a node profile,
a redundancy config, and sizing options. By default the request is
sent to the backend API; --local runs the calculation in-process.

Exit codes:
  0 - Sizing computed
  2 - Error (invalid scenario, connectivity, engine failure)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runSize(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	sizeCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "Scenario JSON file (required)")
	sizeCmd.Flags().BoolVar(&sizeLocal, "local", false, "Size in-process instead of calling the API")
	sizeCmd.MarkFlagRequired("file")
}

// loadScenario reads and decodes the scenario file.
func loadScenario(path string) (models.SizingRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SizingRequest{}, fmt.Errorf("reading scenario: %w", err)
	}
	var req models.SizingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return models.SizingRequest{}, fmt.Errorf("parsing scenario: %w", err)
	}
	return req, nil
}

// runSize executes the sizing and returns an exit code.
func runSize(ctx context.Context, w io.Writer) int {
	req, err := loadScenario(scenarioFile)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var result *models.SizingResult
	if sizeLocal {
		calc := services.NewSizingCalculator()
		local, err := calc.SizeCluster(req.Workloads, req.Profile, req.Redundancy, req.Options)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		result = &local
	} else {
		c := client.New(GetAPIURL())
		result, err = c.Size(ctx, req)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	if IsJSONOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(result)
	} else {
		fmt.Fprintln(w, formatSizingHuman(result))
	}
	return 0
}

// formatSizingHuman renders a sizing result for terminal display.
func formatSizingHuman(r *models.SizingResult) string {
	var out string

	out += styleTitle.Render("Sizing Result") + "\n\n"
	out += fmt.Sprintf("%s %d\n", styleLabel.Render("Total nodes:"), r.TotalNodes)
	if r.SpareNodeAdded {
		out += styleLabel.Render("Includes one N+1 spare node") + "\n"
	}
	out += fmt.Sprintf("%s %s\n\n", styleLabel.Render("Binding dimension:"), r.BindingDimension)

	out += fmt.Sprintf("  compute: %2d nodes, %s utilization\n",
		r.NodesForCompute, renderPct(r.Compute))
	out += fmt.Sprintf("  memory:  %2d nodes, %s utilization\n",
		r.NodesForMemory, renderPct(r.Memory))
	out += fmt.Sprintf("  storage: %2d nodes, %s utilization\n\n",
		r.NodesForStorage, renderPct(r.Storage))

	out += fmt.Sprintf("%s %s raw, %s usable per node\n",
		styleLabel.Render("Storage:"), r.RawCapacityDisplay, r.UsableCapacityDisplay)

	return out
}

// renderPct renders a utilization percentage with threshold coloring.
func renderPct(d models.DimensionReport) string {
	s := utilizationStyle(d.UtilizationPct).Render(fmt.Sprintf("%.1f%%", d.UtilizationPct))
	if d.OverThreshold {
		s += styleCritical.Render(" (over threshold)")
	}
	return s
}
