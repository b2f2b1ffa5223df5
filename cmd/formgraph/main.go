package main

import (
	"os"

	"github.com/surveytools/formgraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
