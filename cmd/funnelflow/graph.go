package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	funnelflow "github.com/insyncinternational/funnelflow"
	"github.com/insyncinternational/funnelflow/internal/adapters/redis"
	"github.com/insyncinternational/funnelflow/internal/config"
	"github.com/insyncinternational/funnelflow/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <funnel-id>",
	Short: "Export a funnel visualization",
	Long:  `Loads a funnel from the configured repository and outputs a Mermaid diagram (graph TD) representing its flow.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cfg.Redis.Addr == "" {
			fmt.Println("Error: graph export requires a redis repository (set redis.addr)")
			os.Exit(1)
		}

		repo := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix))
		engine := funnelflow.New(funnelflow.WithRepository(repo))

		funnel, err := engine.Get(context.Background(), args[0])
		if err != nil {
			fmt.Printf("Error loading funnel: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(funnel, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
