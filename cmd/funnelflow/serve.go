package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	funnelflow "github.com/insyncinternational/funnelflow"
	httpAdapter "github.com/insyncinternational/funnelflow/internal/adapters/http"
	"github.com/insyncinternational/funnelflow/internal/adapters/redis"
	"github.com/insyncinternational/funnelflow/internal/config"
	"github.com/insyncinternational/funnelflow/internal/logging"
	"github.com/insyncinternational/funnelflow/internal/metrics"
	"github.com/insyncinternational/funnelflow/pkg/adapters/memory"
	"github.com/insyncinternational/funnelflow/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the funnel builder HTTP server",
	Long:  `Starts the FunnelFlow engine in server mode, exposing the funnel API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
			cfg.Server.Addr = addr
		}

		logger := logging.New(cfg.Log.Level, cfg.Log.Format)

		var repo ports.FunnelRepository
		if cfg.Redis.Addr != "" {
			repo = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redis.WithPrefix(cfg.Redis.Prefix),
				redis.WithTTL(cfg.Redis.TTL),
			)
			logger.Info("using redis repository", "addr", cfg.Redis.Addr)
		} else {
			repo = memory.NewRepository()
			logger.Warn("no redis address configured, funnels are stored in memory")
		}

		m := metrics.New()
		engine := funnelflow.New(
			funnelflow.WithRepository(repo),
			funnelflow.WithLogger(logger),
			funnelflow.WithAutosaveInterval(cfg.Autosave.Interval),
			funnelflow.WithCanvasSize(cfg.Canvas),
			funnelflow.WithPublicBaseURL(cfg.PublicBaseURL),
			funnelflow.WithSaveObserver(m),
		)

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: httpAdapter.NewHandler(engine, m, logger),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting funnelflow server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			// Flush any pending autosaves before exiting.
			if err := engine.Close(ctx); err != nil {
				logger.Error("failed to flush pending saves", "err", err)
			}
			logger.Info("funnelflow server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
