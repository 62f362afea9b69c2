package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/okullo/notes/cmd/notes/ui"
	"github.com/okullo/notes/pkg/markdown"
)

var (
	showRaw  bool
	showMeta bool
	showHTML bool
)

var showCmd = &cobra.Command{
	Use:   "show [note]",
	Short: "Show a note",
	Long: `Show a note rendered for the terminal. --raw prints the file as stored,
--meta prints its front-matter as YAML and --html prints the body
rendered to HTML.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeNotes,
	Run: func(cmd *cobra.Command, args []string) {
		service, _, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		note, err := service.Note(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}

		switch {
		case showRaw:
			data, err := os.ReadFile(note.Path)
			if err != nil {
				fatal("Failed to read file", err)
			}
			os.Stdout.Write(data)
		case showMeta:
			if len(note.Metadata) == 0 {
				return
			}
			data, err := yaml.Marshal(note.Metadata)
			if err != nil {
				fatal("Failed to encode metadata", err)
			}
			os.Stdout.Write(data)
		case showHTML:
			html, err := markdown.Render([]byte(note.Content))
			if err != nil {
				fatal("Failed to render HTML", err)
			}
			os.Stdout.Write(html)
		default:
			rendered, err := ui.RenderMarkdown(note.Content)
			if err != nil {
				fatal("Failed to render note", err)
			}
			fmt.Print(rendered)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the note file as stored")
	showCmd.Flags().BoolVar(&showMeta, "meta", false, "Print the note front-matter as YAML")
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Print the note body rendered to HTML")
	showCmd.MarkFlagsMutuallyExclusive("raw", "meta", "html")
}
