package main

import (
	"os"

	"github.com/spacebook/spacebook/internal/interfaces/cli/worker"
)

func main() {
	if err := worker.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
