package main

import (
	"fmt"
	"os"

	"github.com/zen-lang/zen/cmd/zen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
