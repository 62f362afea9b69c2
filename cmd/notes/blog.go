package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var blogPath string

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Publish vault assets to a blog checkout",
}

var blogCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Write the blog tag stylesheet",
	Long: `Write the stylesheet covering the vault's blog subtree to
<blog>/assets/css/tag.css. The blog checkout comes from the
configuration unless --blog is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, cfg, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		blog := cfg.Blog
		if blogPath != "" {
			blog = blogPath
		}
		if blog == "" {
			fatal("No blog configured", fmt.Errorf("set one with 'notes config --blog <path>' or pass --blog"))
		}
		info, err := os.Stat(blog)
		if err != nil || !info.IsDir() {
			fatal("Invalid blog path", fmt.Errorf("%s is not a directory", blog))
		}

		target := filepath.Join(blog, "assets", "css", "tag.css")
		if err := emitStylesheet(context.Background(), service, "blog", target); err != nil {
			fatal("Failed to write stylesheet", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(blogCmd)
	blogCmd.AddCommand(blogCSSCmd)
	blogCSSCmd.Flags().StringVar(&blogPath, "blog", "", "Blog checkout directory (overrides the configured path)")
}
