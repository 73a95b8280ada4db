package cmd

import (
	"fmt"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"prettydoc.dev/prettydoc/doc"
	"prettydoc.dev/prettydoc/internal/docscript"
)

var compareCmd = &cobra.Command{
	Use:   "compare <a.yaml> <b.yaml>",
	Short: "Order two doc scripts and report whether one subsumes the other",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := parseScriptFile(args[0])
	if err != nil {
		return err
	}
	b, err := parseScriptFile(args[1])
	if err != nil {
		return err
	}

	c := doc.Compare(a, b)
	log.Debugf("Compare(%s, %s) = %d", args[0], args[1], c)

	switch {
	case c < 0:
		fmt.Println("<")
	case c > 0:
		fmt.Println(">")
	default:
		fmt.Println("=")
	}

	fmt.Printf("sub-doc(a, b) = %v\n", doc.IsSubDocOf(a, b))
	fmt.Printf("sub-doc(b, a) = %v\n", doc.IsSubDocOf(b, a))
	return nil
}

func parseScriptFile(path string) (doc.Doc, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return doc.Empty(), err
	}
	return docscript.Parse(src)
}
