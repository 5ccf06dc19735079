// Command swatch is a terminal color-theme editor.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/swatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
