package main

import (
	"os"

	"github.com/GoSim-25-26J-441/it-inventory/internal/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
