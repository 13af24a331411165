package history

import (
	"context"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertChainStates(ctx context.Context, network model.Network, states []model.ChainState) error
		MaxBlockNumber(ctx context.Context, network model.Network) (uint64, error)
	}
	Metrics interface {
		ObserveRecord(err error)
		ObserveFlush(err error, size int, started time.Time)
	}
)
