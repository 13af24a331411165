package commitment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTrie() Trie {
	return trie.New()
}

func history(n int) [][]byte {
	hashes := make([][]byte, n)
	for i := range hashes {
		sum := sha256.Sum256([]byte{byte(i), byte(i >> 8)})
		hashes[i] = sum[:]
	}
	return hashes
}

func TestBuilder_RootIsOrderIndependent(t *testing.T) {
	t.Parallel()

	builder, err := NewBuilder(newTrie, 4, zap.NewNop())
	require.NoError(t, err)

	hashes := history(200)
	root, err := builder.Build(context.Background(), hashes)
	require.NoError(t, err)
	require.Len(t, root, 32)

	shuffled := append([][]byte(nil), hashes...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	again, err := builder.Build(context.Background(), shuffled)
	require.NoError(t, err)
	assert.Equal(t, root, again)

	other, err := builder.Build(context.Background(), hashes[:199])
	require.NoError(t, err)
	assert.NotEqual(t, root, other)
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	hashes := history(3)
	storageErr := errors.New("disk full")

	tests := []struct {
		name    string
		hashes  [][]byte
		prepare func(tr *MockTrie)
		want    []byte
		wantErr bool
		storage bool
	}{
		{
			name:   "inserts keyed hashes in order",
			hashes: hashes,
			prepare: func(tr *MockTrie) {
				gomock.InOrder(
					tr.EXPECT().Insert(Key(hashes[0]), hashes[0]).Return(nil),
					tr.EXPECT().Insert(Key(hashes[1]), hashes[1]).Return(nil),
					tr.EXPECT().Insert(Key(hashes[2]), hashes[2]).Return(nil),
					tr.EXPECT().Root().Return([]byte{0xaa}),
				)
			},
			want: []byte{0xaa},
		},
		{
			name:   "storage failure is surfaced",
			hashes: hashes,
			prepare: func(tr *MockTrie) {
				tr.EXPECT().Insert(Key(hashes[0]), hashes[0]).Return(nil)
				tr.EXPECT().Insert(Key(hashes[1]), hashes[1]).Return(errors.Join(model.ErrStorage, storageErr))
			},
			wantErr: true,
			storage: true,
		},
		{
			name:    "empty hash is refused before touching the trie",
			hashes:  [][]byte{hashes[0], {}},
			prepare: func(*MockTrie) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			tr := NewMockTrie(ctrl)
			tt.prepare(tr)

			builder, err := NewBuilder(func() Trie { return tr }, 2, zap.NewNop())
			require.NoError(t, err)

			got, err := builder.Build(context.Background(), tt.hashes)
			if tt.wantErr {
				require.Error(t, err)
				if tt.storage {
					assert.ErrorIs(t, err, model.ErrStorage)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_Cancelled(t *testing.T) {
	t.Parallel()

	builder, err := NewBuilder(newTrie, 2, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = builder.Build(ctx, history(10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteRoot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), model.Mainnet.RootFile())
	root := []byte{0xde, 0xad, 0xbe, 0xef}
	require.NoError(t, WriteRoot(path, root))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(root), string(raw))

	assert.Error(t, WriteRoot(filepath.Join(t.TempDir(), "missing", "root.txt"), root))
}

func TestNewBuilderValidation(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(nil, 1, zap.NewNop())
	assert.Error(t, err)
}
