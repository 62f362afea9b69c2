package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okullo/notes/pkg/core"
)

var (
	newTitle string
	newTags  []string
	newState string
	newForce bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a note",
	Long: `Create a note with front-matter seeded from the flags. The name is the
vault-relative path without the .md extension.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, _, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		note, err := service.Create(context.Background(), args[0], core.CreateOptions{
			Title: newTitle,
			State: core.State(newState),
			Tags:  newTags,
			Force: newForce,
		})
		if err != nil {
			fatal("Failed to create note", err)
		}
		fmt.Println(note.Path)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Note title (defaults to the base name)")
	newCmd.Flags().StringArrayVarP(&newTags, "tag", "t", nil, "Tag to add to the front-matter (repeatable)")
	newCmd.Flags().StringVar(&newState, "state", string(core.StateStub), "Initial state (stub, draft, ready, public)")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing note")
}
