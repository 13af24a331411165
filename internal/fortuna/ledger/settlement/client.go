// Package settlement hands winning records to an external transaction builder that
// constructs, signs and submits the mining transaction.
package settlement

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/credential"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/plutus"
	"go.uber.org/zap"
)

const (
	defaultTimeout = time.Minute
	maxBodySize    = 1 << 20
	submitPath     = "/v1/fortuna/mine"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client posts mining transactions to the builder service.
type Client struct {
	endpoint string
	network  model.Network
	http     *http.Client
	metrics  Metrics
	logger   *zap.Logger
}

// NewClient builds a Client for the builder at baseURL.
func NewClient(baseURL string, network model.Network, timeout time.Duration, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("settlement url is required")
	}
	if metrics == nil {
		return nil, errors.New("settlement metrics is required")
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse settlement url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("settlement url scheme %q not supported", base.Scheme)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint: base.String() + submitPath,
		network:  network,
		http:     &http.Client{Timeout: timeout},
		metrics:  metrics,
		logger:   logger.Named("settlement"),
	}, nil
}

type outRef struct {
	TxHash string `json:"tx_hash"`
	Index  uint64 `json:"index"`
}

type submitRequest struct {
	Network             string `json:"network"`
	StateRef            outRef `json:"state_ref"`
	PreviousBlockNumber uint64 `json:"previous_block_number"`
	BlockNumber         uint64 `json:"block_number"`
	Datum               string `json:"datum"`
	MinerRedeemer       string `json:"miner_redeemer"`
	ValidFrom           uint64 `json:"valid_from"`
	ValidTo             uint64 `json:"valid_to"`
}

type submitResponse struct {
	TxHash string `json:"tx_hash"`
	Error  string `json:"error"`
}

// MinerRedeemer encodes the redeemer spending the state output: the nonce, the miner
// credential and an empty merkle proof.
func MinerRedeemer(proof model.Proof) ([]byte, error) {
	raw, err := plutus.Marshal(plutus.NewConstr(0,
		proof.Nonce[:],
		credential.Datum(proof.PaymentKeyHash),
		[]byte{},
	))
	if err != nil {
		return nil, fmt.Errorf("%w: encode miner redeemer: %v", model.ErrEncoding, err)
	}
	return raw, nil
}

// Submit sends the record. A builder refusal wraps model.ErrRejected, an unreachable or
// failing builder wraps model.ErrTransient.
func (c *Client) Submit(ctx context.Context, record model.NextBlockRecord, proof model.Proof) (confirmation model.Confirmation, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit", err, started)
	}()

	datum, err := model.EncodeNextBlock(record)
	if err != nil {
		return model.Confirmation{}, err
	}
	redeemer, err := MinerRedeemer(proof)
	if err != nil {
		return model.Confirmation{}, err
	}

	payload, err := json.Marshal(submitRequest{
		Network:             string(c.network),
		StateRef:            outRef{TxHash: proof.StateRef.TxHash, Index: proof.StateRef.Index},
		PreviousBlockNumber: proof.PreviousBlockNumber,
		BlockNumber:         record.BlockNumber,
		Datum:               hex.EncodeToString(datum),
		MinerRedeemer:       hex.EncodeToString(redeemer),
		ValidFrom:           proof.ValidFrom,
		ValidTo:             proof.ValidTo,
	})
	if err != nil {
		return model.Confirmation{}, fmt.Errorf("marshal submit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return model.Confirmation{}, fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: post %s: %v", model.ErrTransient, c.endpoint, err)
		return model.Confirmation{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		err = fmt.Errorf("%w: read submit response: %v", model.ErrTransient, err)
		return model.Confirmation{}, err
	}

	var decoded submitResponse
	decodeErr := json.Unmarshal(body, &decoded)
	reason := decoded.Error
	if decodeErr != nil || reason == "" {
		reason = strings.TrimSpace(string(body))
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError, resp.StatusCode == http.StatusTooManyRequests:
		err = fmt.Errorf("%w: builder status %d: %s", model.ErrTransient, resp.StatusCode, reason)
		return model.Confirmation{}, err
	case resp.StatusCode >= http.StatusBadRequest:
		err = fmt.Errorf("%w: builder status %d: %s", model.ErrRejected, resp.StatusCode, reason)
		return model.Confirmation{}, err
	case decodeErr != nil || decoded.TxHash == "":
		err = fmt.Errorf("%w: builder returned no transaction hash: %s", model.ErrTransient, reason)
		return model.Confirmation{}, err
	}

	c.logger.Debug("transaction submitted",
		zap.String("tx_hash", decoded.TxHash),
		zap.Uint64("block_number", record.BlockNumber),
	)
	return model.Confirmation{TxHash: decoded.TxHash}, nil
}
