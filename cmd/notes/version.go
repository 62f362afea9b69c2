package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okullo/notes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notes version %s\n", strings.TrimSpace(notes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
