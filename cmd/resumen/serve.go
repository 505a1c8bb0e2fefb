package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumia/statement-engine/internal/api"
	"github.com/resumia/statement-engine/internal/config"
	"github.com/resumia/statement-engine/internal/engine"
	"github.com/resumia/statement-engine/internal/extractor"
	"github.com/resumia/statement-engine/internal/logger"
	"github.com/resumia/statement-engine/internal/parser"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP statement-processing service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			log, err := logger.New(cfg.Logger.Level)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer log.Sync()

			processor := engine.NewProcessor(parser.NewRegistry(), log)
			aggregator := engine.NewAggregator(processor, extractor.PDF{}, log)
			app := api.NewApp(cfg, api.NewHandler(aggregator, log))

			log.Info("starting statement engine",
				zap.String("port", cfg.Server.Port),
				zap.Int("uploadCapBytes", cfg.Upload.MaxBytes))

			return app.Listen(":" + cfg.Server.Port)
		},
	}
}
