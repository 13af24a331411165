package main

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/repository/clickhouse"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/service/history"
	"github.com/goodnatureofminers/fortuna-miner/internal/metrics"
	"go.uber.org/zap"
)

type importHistoryCommand struct {
	HistoryFile   string `long:"history-file" env:"FORTUNA_HISTORY_FILE" description:"JSON block history, defaults to the network export"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"FORTUNA_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Force         bool   `long:"force" description:"rewrite blocks already stored"`
}

func runImportHistory(ctx context.Context, network model.Network, cfg importHistoryCommand, logger *zap.Logger) error {
	file := cfg.HistoryFile
	if file == "" {
		file = network.HistoryFile()
	}
	states, err := history.LoadFile(file)
	if err != nil {
		return err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()

	importer, err := history.NewImporter(repo, metrics.NewHistory(network), network, logger)
	if err != nil {
		return err
	}
	written, err := importer.Import(ctx, states, cfg.Force)
	if err != nil {
		return err
	}
	logger.Info("history imported", zap.String("file", file), zap.Int("blocks", written))
	return nil
}
