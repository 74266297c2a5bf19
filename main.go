package main

import (
	"os"

	"github.com/orgbrain/kag/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
