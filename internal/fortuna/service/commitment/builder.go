// Package commitment folds the historical block hashes into an authenticated trie root.
package commitment

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/pkg/workerpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

const defaultWorkerCount = 8

// Builder computes the commitment root of a block hash history.
type Builder struct {
	logger  *zap.Logger
	newTrie func() Trie
	workers int
}

// NewBuilder builds a Builder that starts every build from a fresh trie returned by newTrie.
func NewBuilder(newTrie func() Trie, workers int, logger *zap.Logger) (*Builder, error) {
	if newTrie == nil {
		return nil, errors.New("commitment trie constructor is required")
	}
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	return &Builder{
		logger:  logger.Named("commitment"),
		newTrie: newTrie,
		workers: workers,
	}, nil
}

// Key is the trie key of a block hash.
func Key(hash []byte) []byte {
	sum := blake2b.Sum256(hash)
	return sum[:]
}

// Build inserts every hash under its blake2b-256 key and returns the root.
// Keys are computed in parallel, insertions happen in input order.
func (b *Builder) Build(ctx context.Context, hashes [][]byte) ([]byte, error) {
	started := time.Now()

	keys, err := workerpool.Map(ctx, b.workers, hashes, func(_ context.Context, hash []byte) ([]byte, error) {
		if len(hash) == 0 {
			return nil, errors.New("empty hash in history")
		}
		return Key(hash), nil
	})
	if err != nil {
		return nil, fmt.Errorf("hash trie keys: %w", err)
	}

	trie := b.newTrie()
	for i, hash := range hashes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := trie.Insert(keys[i], hash); err != nil {
			return nil, fmt.Errorf("insert hash %x: %w", hash, err)
		}
	}

	root := trie.Root()
	b.logger.Info("commitment root built",
		zap.Int("hashes", len(hashes)),
		zap.String("root", hex.EncodeToString(root)),
		zap.Duration("took", time.Since(started)),
	)
	return root, nil
}

// WriteRoot stores the hex encoded root at path.
func WriteRoot(path string, root []byte) error {
	if err := os.WriteFile(path, []byte(hex.EncodeToString(root)), 0o644); err != nil {
		return fmt.Errorf("write root file: %w", err)
	}
	return nil
}
