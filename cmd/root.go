// Package cmd provides the command-line interface for the scheduler.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "os-project",
	Short: "Non-preemptive priority CPU scheduling with aging.",
	Long: `Simulates non-preemptive priority scheduling, optionally with ` +
		`aging that lowers the priority value of waiting processes. ` +
		`Run it once over a workload file or serve it over HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
