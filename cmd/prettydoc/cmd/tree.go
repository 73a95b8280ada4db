package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prettydoc.dev/prettydoc/doc"
	"prettydoc.dev/prettydoc/internal/docscript"
)

var treeLimit int

var treeCmd = &cobra.Command{
	Use:   "tree [script.yaml]",
	Short: "List every concrete rendering reachable from a doc script's Union choices",
	Long: `tree exhaustively resolves every Union in a doc script (see
doc.Deunioned) and prints each resulting rendering on its own line,
prefixed by its index. This is exponential in the number of Unions, so
it is meant for small scripts used as test fixtures, not production
documents.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().IntVar(&treeLimit, "limit", 64, "stop after this many resolutions")
}

func runTree(cmd *cobra.Command, args []string) error {
	src, err := readScriptArg(args)
	if err != nil {
		return err
	}
	d, err := docscript.Parse(src)
	if err != nil {
		return err
	}

	i := 0
	for leaf := range doc.Deunioned(d) {
		fmt.Printf("%d: %q\n", i, doc.Render(leaf, 1<<30))
		i++
		if i >= treeLimit {
			fmt.Printf("... stopped after %d resolutions (--limit)\n", treeLimit)
			break
		}
	}
	return nil
}
