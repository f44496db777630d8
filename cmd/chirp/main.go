package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:     "chirp",
		Short:   "chirp: controversy-driven news posting bot for X",
		Long:    "Polls news feeds, scores items for controversy, and posts the top story to X on a schedule.",
		Version: version,
	}

	root.AddCommand(
		runCmd(),
		onceCmd(),
		setupCmd(),
		verifyCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
