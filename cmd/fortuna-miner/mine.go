package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/credential"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/ledger/kupo"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/ledger/settlement"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/repository/clickhouse"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/search"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/service/history"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/service/miner"
	"github.com/goodnatureofminers/fortuna-miner/internal/metrics"
	"go.uber.org/zap"
)

type mineCommand struct {
	KupoURL          string        `long:"kupo-url" env:"FORTUNA_KUPO_URL" description:"Kupo base URL" default:"http://127.0.0.1:1442"`
	KupoRPS          int           `long:"kupo-rps" env:"FORTUNA_KUPO_RPS" description:"Kupo requests per second, 0 for unlimited" default:"5"`
	ValidatorAddress string        `long:"validator-address" env:"FORTUNA_VALIDATOR_ADDRESS" description:"address holding the state output, required unless --asset-name is set"`
	PolicyID         string        `long:"policy-id" env:"FORTUNA_POLICY_ID" description:"master token policy id (hex)" required:"true"`
	AssetName        string        `long:"asset-name" env:"FORTUNA_ASSET_NAME" description:"master token asset name (hex)"`
	SettlementURL    string        `long:"settlement-url" env:"FORTUNA_SETTLEMENT_URL" description:"transaction builder base URL" required:"true"`
	MinerAddress     string        `long:"miner-address" env:"FORTUNA_MINER_ADDRESS" description:"bech32 address credited with mined blocks" required:"true"`
	HTTPTimeout      time.Duration `long:"http-timeout" env:"FORTUNA_HTTP_TIMEOUT" description:"timeout of ledger requests" default:"30s"`
	Workers          int           `long:"workers" env:"FORTUNA_WORKERS" description:"parallel hash loops" default:"1"`
	Stride           int           `long:"stride" env:"FORTUNA_STRIDE" description:"hashes between cancellation checks" default:"4096"`
	PollInterval     time.Duration `long:"poll-interval" env:"FORTUNA_POLL_INTERVAL" description:"chain head poll interval" default:"10s"`
	RetryInterval    time.Duration `long:"retry-interval" env:"FORTUNA_RETRY_INTERVAL" description:"back off after a failed iteration" default:"10s"`
	Cooldown         time.Duration `long:"cooldown" env:"FORTUNA_COOLDOWN" description:"wait after a submitted block" default:"5s"`
	ReportInterval   time.Duration `long:"report-interval" env:"FORTUNA_REPORT_INTERVAL" description:"hashrate report interval" default:"30s"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"FORTUNA_CLICKHOUSE_DSN" description:"ClickHouse DSN for the chain state history"`
	ZMQAddr          string        `long:"zmq-addr" env:"FORTUNA_ZMQ_ADDR" description:"zmq endpoint publishing chain tip notifications"`
	ZMQTopic         string        `long:"zmq-topic" env:"FORTUNA_ZMQ_TOPIC" description:"zmq topic of chain tip notifications" default:"rollforward"`
	StatusAddr       string        `long:"status-addr" env:"FORTUNA_STATUS_ADDR" description:"address of the status and metrics server" default:":2112"`
	GRPCAddr         string        `long:"grpc-addr" env:"FORTUNA_GRPC_ADDR" description:"address of the gRPC health server" default:":8000"`
}

func runMine(ctx context.Context, network model.Network, cfg mineCommand, logger *zap.Logger) error {
	paymentKeyHash, err := credential.PaymentKeyHash(cfg.MinerAddress, network)
	if err != nil {
		return fmt.Errorf("miner address: %w", err)
	}

	fetcher, err := kupo.NewClient(kupo.Config{
		BaseURL:          cfg.KupoURL,
		ValidatorAddress: cfg.ValidatorAddress,
		PolicyID:         cfg.PolicyID,
		AssetName:        cfg.AssetName,
		RPS:              cfg.KupoRPS,
		Timeout:          cfg.HTTPTimeout,
	}, metrics.NewLedgerClient("kupo", network), logger)
	if err != nil {
		return fmt.Errorf("init kupo client: %w", err)
	}

	submitter, err := settlement.NewClient(cfg.SettlementURL, network, cfg.HTTPTimeout, metrics.NewLedgerClient("settlement", network), logger)
	if err != nil {
		return fmt.Errorf("init settlement client: %w", err)
	}

	meter := search.NewMeter()
	engine, err := search.NewEngine(search.Config{Workers: cfg.Workers, Stride: cfg.Stride}, meter)
	if err != nil {
		return fmt.Errorf("init search engine: %w", err)
	}
	go search.NewReporter(meter, metrics.NewSearch(network), logger, cfg.ReportInterval).Run(ctx)

	var recorder miner.HistoryRecorder
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if closeErr := repo.Close(); closeErr != nil {
				logger.Warn("close repository", zap.Error(closeErr))
			}
		}()
		historyRecorder, err := history.NewRecorder(repo, metrics.NewHistory(network), network, logger)
		if err != nil {
			return fmt.Errorf("init history recorder: %w", err)
		}
		historyRecorder.Start(ctx)
		defer historyRecorder.Stop()
		recorder = historyRecorder
	}

	headSignal, err := startHeadSignal(ctx, cfg.ZMQAddr, cfg.ZMQTopic, logger)
	if err != nil {
		return fmt.Errorf("init head signal: %w", err)
	}

	m, err := miner.NewMiner(miner.Config{
		Network:        network,
		PaymentKeyHash: paymentKeyHash,
		PollInterval:   cfg.PollInterval,
		RetryInterval:  cfg.RetryInterval,
		Cooldown:       cfg.Cooldown,
		HeadSignal:     headSignal,
	}, fetcher, submitter, miner.NewSearchEngine(engine), metrics.NewMiner(network), recorder, logger)
	if err != nil {
		return fmt.Errorf("init miner: %w", err)
	}

	if err := startGRPCServer(ctx, cfg.GRPCAddr, m, 3*cfg.PollInterval+cfg.RetryInterval, logger); err != nil {
		return err
	}
	startStatusServer(ctx, cfg.StatusAddr, m, logger)

	logger.Info("mining started",
		zap.Int("workers", cfg.Workers),
		zap.Int("stride", cfg.Stride),
		zap.Duration("poll_interval", cfg.PollInterval),
	)
	return m.Run(ctx)
}
