// ruleset-bot ingests GitHub rule suite bypasses for an organization and
// notifies the people involved on Slack.
//
// Usage:
//
//	ruleset-bot run                 # every active repository once
//	ruleset-bot run --repo api      # a single repository
//	ruleset-bot watch --interval 5m # run the organization on a schedule
//	ruleset-bot migrate             # apply the schema and import users
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "ruleset-bot",
		Short:         "Notify on GitHub ruleset bypasses",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
