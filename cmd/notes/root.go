package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okullo/notes"
	"github.com/okullo/notes/internal/config"
	"github.com/okullo/notes/pkg/core"
)

var (
	verbose      bool
	vaultFlag    string
	tagsNoteFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage a vault of markdown notes",
	Long: `Notes manages a directory ("vault") of markdown files.
It lists notes, extracts tags from front-matter and body text, and
generates CSS stylesheets that color tags by their registry group.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (overrides the configured path)")
	rootCmd.PersistentFlags().StringVar(&tagsNoteFlag, "tags-note", "", "Tag registry note (overrides the configured name)")
}

// resolveConfig merges the persisted configuration with command-line
// overrides and resolves the vault to an absolute path.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if vaultFlag != "" {
		cfg.Vault = vaultFlag
	}
	if tagsNoteFlag != "" {
		cfg.TagsNote = tagsNoteFlag
	}
	vault, err := filepath.Abs(cfg.Vault)
	if err != nil {
		return cfg, err
	}
	cfg.Vault = vault
	return cfg, nil
}

// openService opens the configured vault. The returned config carries the
// absolute vault path after flag overrides.
func openService() (*core.Service, config.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, cfg, err
	}
	service, err := notes.New(cfg.Vault,
		notes.WithTagsNote(cfg.TagsNote),
		notes.WithLogger(slog.Default()),
	)
	return service, cfg, err
}

// patternArg returns the optional pattern argument, defaulting to "*".
func patternArg(args []string) string {
	if len(args) == 0 {
		return "*"
	}
	return args[0]
}

// completeNotes offers note names for shell completion. A trailing "*" is
// appended so a partial name completes to everything beneath it.
func completeNotes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	service, _, err := openService()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	pattern := toComplete
	if !strings.HasSuffix(pattern, "*") {
		pattern += "*"
	}
	found, err := service.Notes(context.Background(), pattern)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(found))
	for _, note := range found {
		names = append(names, note.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeTags offers every tag in use for shell completion.
func completeTags(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	service, _, err := openService()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	tags, err := service.Tags(context.Background(), "*")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
