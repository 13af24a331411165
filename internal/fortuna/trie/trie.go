// Package trie adapts go-ethereum's Merkle-Patricia trie to the commitment builder.
package trie

import (
	"fmt"

	"github.com/ethereum/go-ethereum/core/rawdb"
	gethtrie "github.com/ethereum/go-ethereum/trie"
	"github.com/ethereum/go-ethereum/triedb"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
)

// Trie is an authenticated key-value map held in memory.
type Trie struct {
	trie *gethtrie.Trie
}

// New returns an empty trie.
func New() *Trie {
	db := triedb.NewDatabase(rawdb.NewMemoryDatabase(), nil)
	return &Trie{trie: gethtrie.NewEmpty(db)}
}

// Insert maps key to value. Failures wrap model.ErrStorage.
func (t *Trie) Insert(key, value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("%w: empty value for key %x", model.ErrStorage, key)
	}
	if err := t.trie.Update(key, value); err != nil {
		return fmt.Errorf("%w: update key %x: %v", model.ErrStorage, key, err)
	}
	return nil
}

// Get returns the value stored under key, or nil.
func (t *Trie) Get(key []byte) ([]byte, error) {
	value, err := t.trie.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: get key %x: %v", model.ErrStorage, key, err)
	}
	return value, nil
}

// Root returns the root digest of the current contents.
func (t *Trie) Root() []byte {
	root := t.trie.Hash()
	return root.Bytes()
}
