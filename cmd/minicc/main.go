package main

import (
	"os"

	"minicc/cmd/minicc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
