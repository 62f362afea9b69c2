package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
)

var obsidianCmd = &cobra.Command{
	Use:   "obsidian",
	Short: "Maintain Obsidian assets inside the vault",
}

var obsidianCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Write the Obsidian tag snippet",
	Long: `Write the stylesheet covering the whole vault to
<vault>/.obsidian/snippets/tag.css, where Obsidian picks it up as a
CSS snippet.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, cfg, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		target := filepath.Join(cfg.Vault, ".obsidian", "snippets", "tag.css")
		if err := emitStylesheet(context.Background(), service, "*", target); err != nil {
			fatal("Failed to write stylesheet", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(obsidianCmd)
	obsidianCmd.AddCommand(obsidianCSSCmd)
}
