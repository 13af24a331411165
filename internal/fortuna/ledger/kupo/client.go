// Package kupo reads the Fortuna chain state from a Kupo chain index.
package kupo

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodySize    = 4 << 20
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config selects the Kupo instance and the state output to follow.
type Config struct {
	BaseURL string
	// ValidatorAddress, when set, restricts matches to outputs at that address.
	ValidatorAddress string
	// PolicyID and AssetName (hex) identify the master token held by the state output.
	PolicyID  string
	AssetName string
	RPS       int
	Timeout   time.Duration
}

// Client fetches and decodes the current chain state.
type Client struct {
	baseURL *url.URL
	pattern string
	address string
	http    *http.Client
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
}

// NewClient builds a Client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("kupo url is required")
	}
	if cfg.PolicyID == "" {
		return nil, errors.New("master token policy id is required")
	}
	if cfg.ValidatorAddress == "" && cfg.AssetName == "" {
		return nil, errors.New("validator address or master token asset name is required")
	}
	if metrics == nil {
		return nil, errors.New("kupo metrics is required")
	}
	if _, err := hex.DecodeString(cfg.PolicyID + cfg.AssetName); err != nil {
		return nil, fmt.Errorf("master token is not hex: %w", err)
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse kupo url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("kupo url scheme %q not supported", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	pattern := cfg.PolicyID + ".*"
	if cfg.AssetName != "" {
		pattern = cfg.PolicyID + "." + cfg.AssetName
	}

	return &Client{
		baseURL: base,
		pattern: pattern,
		address: cfg.ValidatorAddress,
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("kupo"),
	}, nil
}

type match struct {
	TransactionID string  `json:"transaction_id"`
	OutputIndex   uint64  `json:"output_index"`
	Address       string  `json:"address"`
	DatumHash     *string `json:"datum_hash"`
	DatumType     string  `json:"datum_type"`
	CreatedAt     struct {
		SlotNo uint64 `json:"slot_no"`
	} `json:"created_at"`
}

type datumResponse struct {
	Datum string `json:"datum"`
}

// FetchChainState returns the state held by the newest unspent master token output whose
// datum decodes. Backend failures wrap model.ErrTransient; when no candidate output carries
// a valid datum the error wraps model.ErrEncoding.
func (c *Client) FetchChainState(ctx context.Context) (model.ChainState, error) {
	matches, err := c.matches(ctx)
	if err != nil {
		return model.ChainState{}, err
	}

	candidates := make([]match, 0, len(matches))
	for _, m := range matches {
		if c.address != "" && m.Address != c.address {
			continue
		}
		if m.DatumHash == nil || *m.DatumHash == "" {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return model.ChainState{}, fmt.Errorf("%w: no unspent state output matches %s", model.ErrTransient, c.pattern)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.SlotNo > candidates[j].CreatedAt.SlotNo
	})

	var lastErr error
	for _, m := range candidates {
		state, err := c.decode(ctx, m)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, model.ErrEncoding) {
			return model.ChainState{}, err
		}
		// another output holding the token, not the validator state
		c.logger.Debug("skip output without a chain state datum",
			zap.String("tx_hash", m.TransactionID),
			zap.Uint64("output_index", m.OutputIndex),
			zap.Uint64("slot", m.CreatedAt.SlotNo),
			zap.Error(err),
		)
		lastErr = err
	}
	return model.ChainState{}, fmt.Errorf("no state output of %d carries a chain state datum: %w", len(candidates), lastErr)
}

func (c *Client) decode(ctx context.Context, m match) (model.ChainState, error) {
	raw, err := c.datum(ctx, *m.DatumHash)
	if err != nil {
		return model.ChainState{}, err
	}
	state, err := model.DecodeChainState(raw)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("decode datum %s: %w", *m.DatumHash, err)
	}
	state.Ref = model.OutputReference{TxHash: m.TransactionID, Index: m.OutputIndex}
	return state, nil
}

func (c *Client) matches(ctx context.Context) (result []match, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("matches", err, started)
	}()

	if err = c.get(ctx, "/matches/"+c.pattern+"?unspent", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) datum(ctx context.Context, hash string) (raw []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("datum", err, started)
	}()

	var resp *datumResponse
	if err = c.get(ctx, "/datums/"+url.PathEscape(hash), &resp); err != nil {
		return nil, err
	}
	if resp == nil || resp.Datum == "" {
		err = fmt.Errorf("%w: datum %s not indexed yet", model.ErrTransient, hash)
		return nil, err
	}
	raw, err = hex.DecodeString(resp.Datum)
	if err != nil {
		err = fmt.Errorf("%w: datum %s is not hex: %v", model.ErrEncoding, hash, err)
		return nil, err
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String()+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", model.ErrTransient, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", model.ErrTransient, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: status %d: %s", model.ErrTransient, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", model.ErrTransient, path, err)
	}
	return nil
}
