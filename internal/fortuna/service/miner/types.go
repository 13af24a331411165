package miner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/search"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainStateFetcher interface {
		FetchChainState(ctx context.Context) (model.ChainState, error)
	}
	Submitter interface {
		Submit(ctx context.Context, record model.NextBlockRecord, proof model.Proof) (model.Confirmation, error)
	}
	Engine interface {
		Start(encoded []byte, target difficulty.Difficulty) (Run, error)
	}
	Run interface {
		Search(ctx context.Context) (search.Solution, error)
		Attempts() uint64
	}
	HistoryRecorder interface {
		Record(ctx context.Context, state model.ChainState) error
	}
	Metrics interface {
		ObserveFetchHead(err error, started time.Time)
		ObserveSubmit(err error, started time.Time)
		ObserveFound(started time.Time)
		ObserveStale()
		ObserveEncodingError()
		ObserveHead(state model.ChainState)
		SetState(state string)
	}
)
