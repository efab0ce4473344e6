package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"poolTags/internal/config"
	"poolTags/internal/storage"
	"poolTags/internal/storage/postgres"
	"poolTags/internal/subgraph"
	"poolTags/internal/tags"
)

func main() {
	root := &cobra.Command{
		Use:          "tagger",
		Short:        "Uniswap v3 pool contract-tag fetcher",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch pools for a network and emit contract tags",
		RunE:  runFetch,
	}

	fetchCmd.Flags().String("network", "", "numeric network identifier (e.g. 1 for mainnet)")
	fetchCmd.Flags().String("api-key", "", "subgraph gateway API key (or TAGGER_API_KEY)")
	fetchCmd.Flags().String("out", "./data/tags.jsonl", "output JSONL path")
	fetchCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for tag upserts")
	fetchCmd.Flags().Duration("http-timeout", 30*time.Second, "HTTP request timeout")
	fetchCmd.Flags().Int("max-pages", 10000, "page fetch limit, 0 disables the guard")
	fetchCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(fetchCmd)

	networksCmd := &cobra.Command{
		Use:   "networks",
		Short: "List supported network identifiers",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, network := range subgraph.SupportedNetworks() {
				fmt.Fprintln(cmd.OutOrStdout(), network)
			}
		},
	}

	root.AddCommand(networksCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Network == "" {
		return fmt.Errorf("network is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("api key is required")
	}

	endpoint, err := subgraph.ResolveEndpoint(cfg.Network, cfg.APIKey)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := subgraph.NewClient(endpoint, cfg.HTTPTimeout, logger)

	runner := tags.NewRunner(tags.RunConfig{
		Network:  cfg.Network,
		PageSize: subgraph.PageSize,
		MaxPages: cfg.MaxPages,
	}, client.FetchPage, logger)

	logger.Info("fetch start",
		zap.String("network", cfg.Network),
		zap.String("out", cfg.Out),
		zap.Bool("postgres", cfg.PGDSN != ""),
		zap.Int("max_pages", cfg.MaxPages),
	)

	tagList, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	sinks := []storage.Sink{storage.NewJsonlStorage(cfg.Out)}

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	for _, sink := range sinks {
		if err := sink.PutTagBatch(ctx, tagList); err != nil {
			return fmt.Errorf("store tags: %w", err)
		}
	}

	logger.Info("fetch complete", zap.String("network", cfg.Network), zap.Int("tags", len(tagList)))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
