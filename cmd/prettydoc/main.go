// Command prettydoc reads doc scripts (a small YAML document-description
// format, see internal/docscript) and drives the doc package's render,
// compare, hash and tree operations from the shell.
package main

import (
	"os"

	"prettydoc.dev/prettydoc/cmd/prettydoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
