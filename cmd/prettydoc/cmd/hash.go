package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prettydoc.dev/prettydoc/doc"
	"prettydoc.dev/prettydoc/internal/docscript"
)

var hashCmd = &cobra.Command{
	Use:   "hash [script.yaml]",
	Short: "Print the hash of a doc script's infinite-width rendering",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	src, err := readScriptArg(args)
	if err != nil {
		return err
	}
	d, err := docscript.Parse(src)
	if err != nil {
		return err
	}
	fmt.Printf("%08x\n", doc.Hash(d))
	return nil
}
