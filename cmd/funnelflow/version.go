package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	funnelflow "github.com/insyncinternational/funnelflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of funnelflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("funnelflow version %s\n", strings.TrimSpace(funnelflow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
