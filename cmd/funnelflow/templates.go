package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insyncinternational/funnelflow/pkg/templates"
)

// templatesCmd lists the built-in funnel templates.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in funnel templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range templates.Catalog() {
			fmt.Printf("%-12s %-24s %s\n", info.Name, info.Label, info.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
