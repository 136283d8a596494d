package main

import (
	"os"

	"github.com/bnema/wlidle/cmd"
	"github.com/bnema/wlidle/internal/emitter"
)

func main() {
	if err := cmd.Execute(); err != nil {
		emitter.Diagnose(os.Stderr, err)
		os.Exit(1)
	}
}
