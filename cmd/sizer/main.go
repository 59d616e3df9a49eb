// ABOUTME: Entry point for the sizer CLI
// ABOUTME: Command-line tool for capacity sizing and CI/CD integration

package main

import (
	"fmt"
	"os"

	"serversizer/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
