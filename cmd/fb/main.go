package main

import (
	"os"

	"github.com/bnema/files-billing-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
