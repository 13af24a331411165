package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/repository/clickhouse"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/service/commitment"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/service/history"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/trie"
	"github.com/goodnatureofminers/fortuna-miner/internal/metrics"
	"go.uber.org/zap"
)

type commitmentRootCommand struct {
	HistoryFile   string `long:"history-file" env:"FORTUNA_HISTORY_FILE" description:"JSON block history, defaults to the network export"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"FORTUNA_CLICKHOUSE_DSN" description:"read the history from ClickHouse instead of a file"`
	RootFile      string `long:"root-file" env:"FORTUNA_ROOT_FILE" description:"output file, defaults to the network root file"`
	Workers       int    `long:"workers" env:"FORTUNA_COMMITMENT_WORKERS" description:"key hashing workers" default:"8"`
}

func runCommitmentRoot(ctx context.Context, network model.Network, cfg commitmentRootCommand, logger *zap.Logger) error {
	states, err := loadHistory(ctx, network, cfg.HistoryFile, cfg.ClickhouseDSN, logger)
	if err != nil {
		return err
	}

	builder, err := commitment.NewBuilder(func() commitment.Trie { return trie.New() }, cfg.Workers, logger)
	if err != nil {
		return err
	}
	root, err := builder.Build(ctx, history.Hashes(states))
	if err != nil {
		return fmt.Errorf("build commitment root: %w", err)
	}

	rootFile := cfg.RootFile
	if rootFile == "" {
		rootFile = network.RootFile()
	}
	if err := commitment.WriteRoot(rootFile, root); err != nil {
		return err
	}
	logger.Info("current root written", zap.String("file", rootFile), zap.String("root", hex.EncodeToString(root)))
	return nil
}

func loadHistory(ctx context.Context, network model.Network, file, dsn string, logger *zap.Logger) ([]model.ChainState, error) {
	if dsn != "" {
		repo, err := clickhouse.NewRepository(dsn, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if closeErr := repo.Close(); closeErr != nil {
				logger.Warn("close repository", zap.Error(closeErr))
			}
		}()
		states, err := repo.ChainStates(ctx, network)
		if err != nil {
			return nil, fmt.Errorf("load history: %w", err)
		}
		logger.Info("history loaded from clickhouse", zap.Int("blocks", len(states)))
		return states, nil
	}

	if file == "" {
		file = network.HistoryFile()
	}
	states, err := history.LoadFile(file)
	if err != nil {
		return nil, err
	}
	logger.Info("history loaded", zap.String("file", file), zap.Int("blocks", len(states)))
	return states, nil
}
