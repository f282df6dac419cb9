package main

import (
	"os"

	"postboard/commands"
)

var exit = os.Exit

// RealMain runs the CLI and exits non-zero on failure.
func RealMain() {
	if err := commands.Execute(); err != nil {
		exit(1)
	}
}

func main() {
	RealMain()
}
