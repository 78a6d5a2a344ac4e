package main

import (
	"fmt"
	"os"

	"github.com/wheelhouse-build/wheelhouse/pkg/ui"
)

func main() {
	if err := Execute(); err != nil {
		format := ui.DetectFormat(os.Stderr)
		fmt.Fprintln(os.Stderr, ui.Styled(format, ui.ErrorStyle, "Error:"), err)
		os.Exit(1)
	}
}
