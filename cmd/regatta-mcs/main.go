package main

import (
	"fmt"
	"os"

	"regatta-mcs/cmd/regatta-mcs/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
