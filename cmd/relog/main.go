package main

import (
	"os"

	"github.com/relog-dev/relog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.HandleError(err))
	}
}
