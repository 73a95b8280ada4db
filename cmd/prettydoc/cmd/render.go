package cmd

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"prettydoc.dev/prettydoc/doc"
	"prettydoc.dev/prettydoc/internal/docscript"
)

var renderWidth int

var renderCmd = &cobra.Command{
	Use:   "render [script.yaml]",
	Short: "Render a doc script at a given line width",
	Long: `render reads a doc script (from a file argument, or stdin if none is
given), parses it into a document, and writes its best layout at the
requested width to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 80, "target line width")
}

func runRender(cmd *cobra.Command, args []string) error {
	src, err := readScriptArg(args)
	if err != nil {
		return err
	}

	d, err := docscript.Parse(src)
	if err != nil {
		return err
	}

	log.Debugf("parsed doc script, rendering at width=%d", renderWidth)
	fmt.Println(doc.Render(d, renderWidth))
	return nil
}

func readScriptArg(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
