package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okullo/notes/pkg/core"
)

var (
	listJSON  bool
	listState string
)

// noteInfo is the JSON shape of one listing entry.
type noteInfo struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	State string   `json:"state"`
	Date  string   `json:"date,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List notes in the vault",
	Long: `List notes matching a pattern. A pattern selects both the note with
that name and every note beneath it; the default pattern matches the
whole vault.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeNotes,
	Run: func(cmd *cobra.Command, args []string) {
		if listState != "" && !core.State(listState).Valid() {
			fatal("Invalid state", fmt.Errorf("%q is not one of %v", listState, core.States))
		}

		service, _, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		found, err := service.Notes(context.Background(), patternArg(args))
		if err != nil {
			fatal("Failed to list notes", err)
		}

		var filtered []core.Note
		for _, note := range found {
			if listState != "" && note.State() != core.State(listState) {
				continue
			}
			filtered = append(filtered, note)
		}

		if listJSON {
			infos := make([]noteInfo, 0, len(filtered))
			for _, note := range filtered {
				info := noteInfo{
					Name:  note.Name,
					Title: note.Title(),
					State: string(note.State()),
					Tags:  note.TagNames(),
				}
				if date, ok := note.Date(); ok {
					info.Date = date.Format("2006-01-02")
				}
				infos = append(infos, info)
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(infos); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range filtered {
			fmt.Println(note.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listState, "state", "", "Only list notes in this state (stub, draft, ready, public)")
}
