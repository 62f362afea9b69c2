package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/okullo/notes/internal/config"
)

var configBlog string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the stored configuration",
	Long: `Without flags this prints the configuration file location and its
values. --vault, --tags-note and --blog update the stored values; the
vault must be an existing directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fatal("Failed to load configuration", err)
		}

		changed := false
		if vaultFlag != "" {
			vault, err := filepath.Abs(vaultFlag)
			if err != nil {
				fatal("Invalid vault path", err)
			}
			info, err := os.Stat(vault)
			if err != nil || !info.IsDir() {
				fatal("Invalid vault path", fmt.Errorf("%s is not a directory", vault))
			}
			cfg.Vault = vault
			changed = true
		}
		if tagsNoteFlag != "" {
			cfg.TagsNote = tagsNoteFlag
			changed = true
		}
		if configBlog != "" {
			blog, err := filepath.Abs(configBlog)
			if err != nil {
				fatal("Invalid blog path", err)
			}
			cfg.Blog = blog
			changed = true
		}

		if changed {
			if err := cfg.Save(); err != nil {
				fatal("Failed to save configuration", err)
			}
			fmt.Println("Configuration saved.")
			return
		}

		file, err := config.File()
		if err != nil {
			fatal("Failed to locate configuration", err)
		}
		fmt.Printf("config file: %s\n", file)
		fmt.Printf("vault:       %s\n", cfg.Vault)
		fmt.Printf("tags note:   %s\n", cfg.TagsNote)
		if cfg.Blog != "" {
			fmt.Printf("blog:        %s\n", cfg.Blog)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configBlog, "blog", "", "Blog checkout directory to store")
}
