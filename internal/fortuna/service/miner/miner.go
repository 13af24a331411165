// Package miner drives the mining loop: it follows the chain head, searches for a
// winning nonce and hands the next block to the settlement collaborator.
package miner

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/clock"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/candidate"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/credential"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/search"
	"go.uber.org/zap"
)

// Config tunes the mining loop. Zero durations take the defaults.
type Config struct {
	Network        model.Network
	PaymentKeyHash []byte
	PollInterval   time.Duration
	RetryInterval  time.Duration
	Cooldown       time.Duration
	// HeadSignal, when set, cuts the poll interval short on chain tip notifications.
	HeadSignal <-chan struct{}
}

// Miner holds the state of the mining loop. It is driven by a single goroutine through Run;
// Status may be called concurrently.
type Miner struct {
	logger    *zap.Logger
	network   model.Network
	fetcher   ChainStateFetcher
	submitter Submitter
	engine    Engine
	metrics   Metrics
	history   HistoryRecorder

	paymentKeyHash []byte
	credentialHash [model.HashSize]byte

	pollInterval  time.Duration
	retryInterval time.Duration
	cooldown      time.Duration
	headSignal    <-chan struct{}

	sleep func(context.Context, time.Duration) error
	now   func() time.Time
	nonce func() (candidate.Nonce, error)

	stage         Stage
	head          *model.ChainState
	run           Run
	searchStarted time.Time
	solution      search.Solution
	record        model.NextBlockRecord
	proof         model.Proof

	mu     sync.Mutex
	status Status
}

// NewMiner builds a Miner. history may be nil.
func NewMiner(
	cfg Config,
	fetcher ChainStateFetcher,
	submitter Submitter,
	engine Engine,
	metrics Metrics,
	history HistoryRecorder,
	logger *zap.Logger,
) (*Miner, error) {
	if fetcher == nil {
		return nil, errors.New("miner chain state fetcher is required")
	}
	if submitter == nil {
		return nil, errors.New("miner submitter is required")
	}
	if engine == nil {
		return nil, errors.New("miner search engine is required")
	}
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}
	credentialHash, err := credential.Hash(cfg.PaymentKeyHash)
	if err != nil {
		return nil, fmt.Errorf("miner credential: %w", err)
	}

	m := &Miner{
		logger:         logger.Named("miner").With(zap.String("network", string(cfg.Network))),
		network:        cfg.Network,
		fetcher:        fetcher,
		submitter:      submitter,
		engine:         engine,
		metrics:        metrics,
		history:        history,
		paymentKeyHash: cfg.PaymentKeyHash,
		credentialHash: credentialHash,
		pollInterval:   orDefault(cfg.PollInterval, defaultPollInterval),
		retryInterval:  orDefault(cfg.RetryInterval, defaultRetryInterval),
		cooldown:       orDefault(cfg.Cooldown, defaultCooldown),
		headSignal:     cfg.HeadSignal,
		sleep:          clock.SleepWithContext,
		now:            time.Now,
		nonce:          candidate.RandomNonce,
		stage:          StageIdle,
		status:         Status{Network: string(cfg.Network), Stage: StageIdle},
	}
	return m, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Run drives the loop until ctx is canceled. Failures are logged and retried, never returned.
func (m *Miner) Run(ctx context.Context) error {
	m.setStage(StageIdle)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := m.step(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.setError(err)
			m.logger.Warn("run iteration failed, backing off",
				zap.String("stage", string(m.stage)),
				zap.Uint64("block_number", m.blockNumber()),
				zap.Error(err),
				zap.Duration("sleep", m.retryInterval),
			)
			if sleepErr := m.sleep(ctx, m.retryInterval); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// step performs one transition. A returned error leaves the loop in a stage that retries.
func (m *Miner) step(ctx context.Context) error {
	switch m.stage {
	case StageIdle, StageStale:
		m.setStage(StageFetchHead)
		return nil
	case StageFetchHead:
		return m.fetchHead(ctx)
	case StageSearching:
		return m.searching(ctx)
	case StageFound:
		return m.found()
	case StageSubmitting:
		return m.submitting(ctx)
	default:
		return fmt.Errorf("unknown stage %q", m.stage)
	}
}

func (m *Miner) fetchHead(ctx context.Context) error {
	started := time.Now()
	state, err := m.fetcher.FetchChainState(ctx)
	m.metrics.ObserveFetchHead(err, started)
	if err != nil {
		if m.run != nil && ctx.Err() == nil {
			// keep hashing on the current candidate; the next poll fetches again
			m.setError(err)
			m.logger.Warn("chain head refresh failed, continuing search",
				zap.String("stage", string(StageFetchHead)),
				zap.Uint64("block_number", m.blockNumber()),
				zap.Error(err),
			)
			m.setStage(StageSearching)
			return nil
		}
		return fmt.Errorf("fetch chain state: %w", err)
	}

	if m.head != nil && m.head.Equal(state) && m.run != nil {
		m.setStage(StageSearching)
		return nil
	}

	if m.run != nil {
		m.metrics.ObserveStale()
		m.logger.Info("chain head moved, abandoning candidate",
			zap.Uint64("block_number", m.head.BlockNumber),
			zap.Uint64("new_block_number", state.BlockNumber),
		)
		m.run = nil
		m.setStage(StageStale)
	}

	if err := m.adopt(ctx, state); err != nil {
		if errors.Is(err, model.ErrEncoding) {
			m.metrics.ObserveEncodingError()
		}
		return err
	}
	m.setStage(StageSearching)
	return nil
}

// adopt builds a fresh candidate and search run for state.
func (m *Miner) adopt(ctx context.Context, state model.ChainState) error {
	m.head = &state
	m.metrics.ObserveHead(state)
	if m.history != nil {
		// a full history queue drops the row instead of holding up the new candidate
		recordCtx, cancel := context.WithTimeout(ctx, historyRecordTimeout)
		_ = m.history.Record(recordCtx, state)
		cancel()
	}

	nonce, err := m.nonce()
	if err != nil {
		return fmt.Errorf("draw nonce: %w", err)
	}
	encoded, err := candidate.Encode(candidate.New(state, m.credentialHash, nonce))
	if err != nil {
		return fmt.Errorf("encode candidate for block %d: %w", state.BlockNumber, err)
	}
	run, err := m.engine.Start(encoded, state.Target())
	if err != nil {
		return fmt.Errorf("start search for block %d: %w", state.BlockNumber, err)
	}

	m.run = run
	m.searchStarted = m.now()
	m.updateStatus(func(s *Status) {
		s.BlockNumber = state.BlockNumber
		s.LeadingZeros = state.LeadingZeros
		s.DifficultyNumber = state.DifficultyNumber
	})
	m.logger.Info("mining new candidate",
		zap.Uint64("block_number", state.BlockNumber),
		zap.Stringer("target", state.Target()),
	)
	return nil
}

func (m *Miner) searching(ctx context.Context) error {
	pollCtx, cancel := context.WithTimeout(ctx, m.pollInterval)
	defer cancel()
	stop := clock.CancelOnSignal(pollCtx, m.headSignal, cancel)
	defer stop()

	solution, err := m.run.Search(pollCtx)
	m.updateStatus(func(s *Status) { s.Attempts = m.run.Attempts() })
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			// poll: re-check the head, the run is kept if nothing changed
			m.setStage(StageFetchHead)
			return nil
		}
		return fmt.Errorf("search block %d: %w", m.blockNumber(), err)
	}

	m.solution = solution
	m.metrics.ObserveFound(m.searchStarted)
	m.updateStatus(func(s *Status) { s.Found++ })
	m.logger.Info("winning nonce found",
		zap.Uint64("block_number", m.blockNumber()),
		zap.String("hash", solution.Hash.String()),
		zap.Stringer("difficulty", solution.Difficulty),
		zap.Uint64("attempts", solution.Attempts),
	)
	m.setStage(StageFound)
	return nil
}

func (m *Miner) found() error {
	state := *m.head
	window, err := ValidityWindow(m.now())
	if err == nil {
		m.record, err = NextBlock(state, m.solution.Hash[:], window)
	}
	var datum []byte
	if err == nil {
		datum, err = model.EncodeNextBlock(m.record)
	}
	if err != nil {
		m.metrics.ObserveEncodingError()
		m.discard()
		return fmt.Errorf("build next block for %d: %w", state.BlockNumber, err)
	}

	m.proof = model.Proof{
		Nonce:               m.solution.Nonce,
		PaymentKeyHash:      m.paymentKeyHash,
		PreviousBlockNumber: state.BlockNumber,
		StateRef:            state.Ref,
		ValidFrom:           window.ValidFrom,
		ValidTo:             window.ValidTo,
	}
	m.logger.Info("found next datum",
		zap.Uint64("block_number", m.record.BlockNumber),
		zap.String("datum", hex.EncodeToString(datum)),
	)
	m.setStage(StageSubmitting)
	return nil
}

func (m *Miner) submitting(ctx context.Context) error {
	started := time.Now()
	confirmation, err := m.submitter.Submit(ctx, m.record, m.proof)
	m.metrics.ObserveSubmit(err, started)
	// the record is never resubmitted; the next head decides what to mine
	m.discard()

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.setError(err)
		fields := []zap.Field{
			zap.String("stage", string(StageSubmitting)),
			zap.Uint64("block_number", m.record.BlockNumber),
			zap.Error(err),
		}
		switch {
		case errors.Is(err, model.ErrRejected):
			m.logger.Warn("next block rejected", fields...)
		case errors.Is(err, model.ErrTransient):
			m.logger.Warn("next block not submitted, settlement unavailable", fields...)
		default:
			m.logger.Error("next block submission failed", fields...)
		}
		return nil
	}

	m.updateStatus(func(s *Status) {
		s.Submitted++
		s.LastTxHash = confirmation.TxHash
		s.LastError = ""
	})
	m.logger.Info("next block submitted",
		zap.Uint64("block_number", m.record.BlockNumber),
		zap.String("tx_hash", confirmation.TxHash),
	)
	return m.sleep(ctx, m.cooldown)
}

// discard drops the current candidate so the next fetch rebuilds it.
func (m *Miner) discard() {
	m.head = nil
	m.run = nil
	m.setStage(StageFetchHead)
}

func (m *Miner) blockNumber() uint64 {
	if m.head == nil {
		return 0
	}
	return m.head.BlockNumber
}

func (m *Miner) setStage(stage Stage) {
	m.stage = stage
	m.metrics.SetState(string(stage))
	m.updateStatus(func(s *Status) { s.Stage = stage })
}

func (m *Miner) setError(err error) {
	m.updateStatus(func(s *Status) { s.LastError = err.Error() })
}

func (m *Miner) updateStatus(update func(*Status)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	update(&m.status)
	m.status.UpdatedAt = m.now()
}

// Status returns a snapshot of the loop.
func (m *Miner) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}
