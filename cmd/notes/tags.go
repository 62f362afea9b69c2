package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okullo/notes/cmd/notes/ui"
	"github.com/okullo/notes/pkg/core"
	"github.com/okullo/notes/pkg/style"
)

var (
	tagsListJSON  bool
	tagsListColor bool
	cssOutput     string
	cssWatch      bool
)

// tagInfo is the JSON shape of one tag listing entry.
type tagInfo struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

var tagsCmd = &cobra.Command{
	Use:   "tags [tag]",
	Short: "Work with tags",
	Long: `Without arguments this prints the tag overview help. With a tag
argument it lists the notes carrying that tag (a leading '#' is
accepted, and required for tags named like a subcommand).`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeTags,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}

		service, _, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		found, err := service.NotesByTag(context.Background(), args[0])
		if err != nil {
			fatal("Failed to filter notes", err)
		}
		for _, note := range found {
			fmt.Println(note.Name)
		}
	},
}

var tagsListCmd = &cobra.Command{
	Use:               "list [pattern]",
	Short:             "List tags used by matching notes",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeNotes,
	Run: func(cmd *cobra.Command, args []string) {
		service, _, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx := context.Background()
		tags, err := service.Tags(ctx, patternArg(args))
		if err != nil {
			fatal("Failed to list tags", err)
		}

		if tagsListJSON {
			infos := make([]tagInfo, 0, len(tags))
			for _, tag := range tags {
				infos = append(infos, tagInfo{Name: tag.Name, Group: tag.Group})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(infos); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if tagsListColor {
			registry, err := service.Registry(ctx)
			if err != nil {
				fatal("Failed to read tag registry", err)
			}
			painter := ui.NewTagPainter(registry.Groups())
			for _, tag := range tags {
				fmt.Println(painter.Paint(tag))
			}
			return
		}

		for _, tag := range tags {
			fmt.Println(tag)
		}
	},
}

var tagsCSSCmd = &cobra.Command{
	Use:   "css [pattern]",
	Short: "Generate a tag stylesheet",
	Long: `Generate CSS that colors tags by their registry group. The stylesheet
goes to stdout unless --output names a file. With --watch the file is
rewritten whenever the vault changes.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeNotes,
	Run: func(cmd *cobra.Command, args []string) {
		if cssWatch && cssOutput == "" {
			fatal("Invalid usage", fmt.Errorf("--watch requires --output"))
		}

		service, _, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		pattern := patternArg(args)
		if cssWatch {
			if err := watchStylesheet(service, pattern, cssOutput); err != nil {
				fatal("Watch failed", err)
			}
			return
		}
		if err := emitStylesheet(context.Background(), service, pattern, cssOutput); err != nil {
			fatal("Failed to generate stylesheet", err)
		}
	},
}

// emitStylesheet renders the stylesheet for pattern and writes it to target,
// or to stdout when target is empty.
func emitStylesheet(ctx context.Context, service *core.Service, pattern, target string) error {
	tags, err := service.StylesheetTags(ctx, pattern)
	if err != nil {
		return err
	}
	registry, err := service.Registry(ctx)
	if err != nil {
		return err
	}
	sheet, err := style.Stylesheet(registry.Groups(), tags)
	if err != nil {
		return err
	}

	if target == "" {
		fmt.Print(sheet)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(sheet), 0644); err != nil {
		return err
	}
	slog.Info("stylesheet written", "path", target, "tags", len(tags))
	return nil
}

// watchStylesheet keeps the stylesheet current until interrupted. Metadata
// is re-read on every change so registry edits take effect too.
func watchStylesheet(service *core.Service, pattern, target string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := service.Watch(ctx)
	if err != nil {
		return err
	}
	if err := emitStylesheet(ctx, service, pattern, target); err != nil {
		return err
	}

	for event := range events {
		slog.Debug("vault changed", "type", event.Type, "note", event.Name)
		service.Refresh()
		if err := emitStylesheet(ctx, service, pattern, target); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsCSSCmd)
	tagsListCmd.Flags().BoolVar(&tagsListJSON, "json", false, "Output in JSON format")
	tagsListCmd.Flags().BoolVar(&tagsListColor, "color", false, "Color tags by their group")
	tagsCSSCmd.Flags().StringVarP(&cssOutput, "output", "o", "", "Write the stylesheet to this file")
	tagsCSSCmd.Flags().BoolVar(&cssWatch, "watch", false, "Regenerate when the vault changes (requires --output)")
}
