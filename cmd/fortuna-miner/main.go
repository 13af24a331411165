// Package main is the fortuna-miner entrypoint.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type options struct {
	Network string `long:"network" env:"FORTUNA_NETWORK" description:"cardano network" choice:"mainnet" choice:"preview" default:"mainnet"`
	LogJSON bool   `long:"log-json" env:"FORTUNA_LOG_JSON" description:"log in JSON"`

	Mine           mineCommand           `command:"mine" description:"Mine the next Fortuna blocks"`
	CommitmentRoot commitmentRootCommand `command:"commitment-root" description:"Compute the commitment root of the block history"`
	ImportHistory  importHistoryCommand  `command:"import-history" description:"Copy a JSON block history into ClickHouse"`
	Address        addressCommand        `command:"address" description:"Show the miner credential of an address"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(opts.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	network, err := model.ParseNetwork(opts.Network)
	if err != nil {
		logger.Fatal("invalid network", zap.Error(err))
	}
	logger = logger.With(zap.String("network", string(network)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	switch parser.Active.Name {
	case "mine":
		runErr = runMine(ctx, network, opts.Mine, logger)
	case "commitment-root":
		runErr = runCommitmentRoot(ctx, network, opts.CommitmentRoot, logger)
	case "import-history":
		runErr = runImportHistory(ctx, network, opts.ImportHistory, logger)
	case "address":
		runErr = runAddress(network, opts.Address, logger)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Fatal("command failed", zap.String("command", parser.Active.Name), zap.Error(runErr))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
