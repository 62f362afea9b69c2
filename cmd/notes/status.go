package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okullo/notes/pkg/core"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, cfg, err := openService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		stats, err := service.Stats(context.Background())
		if err != nil {
			fatal("Failed to read vault", err)
		}

		if statusJSON {
			report := struct {
				Vault string          `json:"vault"`
				Stats core.VaultStats `json:"stats"`
				State any             `json:"state"`
			}{cfg.Vault, stats, service.State()}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Printf("vault:     %s\n", cfg.Vault)
		fmt.Printf("notes:     %d\n", stats.Notes)
		fmt.Printf("tags:      %d in use\n", stats.Tags)
		for _, state := range core.States {
			if n := stats.States[state]; n > 0 {
				fmt.Printf("  %-7s %d\n", state+":", n)
			}
		}
		if stats.TagsNoteSeen {
			fmt.Printf("tags note: %s\n", stats.TagsNote)
		} else {
			fmt.Printf("tags note: %s (missing)\n", stats.TagsNote)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}
