package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotf/cmd/dotf"
	"github.com/arthur-debert/dotf/pkg/style"
)

func main() {
	if err := dotf.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorText(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
