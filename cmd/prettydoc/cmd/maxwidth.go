package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prettydoc.dev/prettydoc/doc"
	"prettydoc.dev/prettydoc/internal/docscript"
)

var maxwidthCmd = &cobra.Command{
	Use:   "maxwidth [script.yaml]",
	Short: "Print the widest first-line width a doc script could need",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMaxwidth,
}

func init() {
	rootCmd.AddCommand(maxwidthCmd)
}

func runMaxwidth(cmd *cobra.Command, args []string) error {
	src, err := readScriptArg(args)
	if err != nil {
		return err
	}
	d, err := docscript.Parse(src)
	if err != nil {
		return err
	}
	fmt.Println(doc.MaxWidth(d))
	return nil
}
