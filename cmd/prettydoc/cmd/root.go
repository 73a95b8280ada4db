package cmd

import (
	"fortio.org/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "prettydoc",
	Short: "Drive the prettydoc document algebra from the shell",
	Long: `prettydoc reads small YAML "doc script" files describing a
pretty-printing document and renders, compares, hashes or inspects them
with the underlying Wadler/Leijen-style document algebra.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLogLevel(log.Debug)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
