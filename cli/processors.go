// ABOUTME: Processors command listing the catalog rows
// ABOUTME: Shows cores, clock, benchmark score, and power per processor

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
)

var processorsCmd = &cobra.Command{
	Use:   "processors",
	Short: "List the processor catalog",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runProcessors(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(processorsCmd)
}

func runProcessors(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	procs, err := c.Processors(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(procs)
		return 0
	}

	fmt.Fprintln(w, styleTitle.Render("Processor Catalog"))
	fmt.Fprintf(w, "%-28s %6s %8s %10s %6s\n", "NAME", "CORES", "GHZ", "SPECINT", "TDP")
	for _, p := range procs {
		fmt.Fprintf(w, "%-28s %6d %8.2f %10d %5dW\n",
			p.Name, p.Cores, p.FrequencyGHz, p.SpecIntScore, p.TDPWatts)
	}
	return 0
}
