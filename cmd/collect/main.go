package main

import (
	"os"

	"github.com/hasbyte1/go-collection/cmd/collect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
