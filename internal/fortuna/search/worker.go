package search

import (
	"context"
	"sync/atomic"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/candidate"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
)

// worker owns one copy of the encoding. Only the goroutine running search touches buf.
type worker struct {
	buf      []byte
	nonce    candidate.Nonce
	target   difficulty.Difficulty
	stride   int
	meter    *Meter
	attempts *atomic.Uint64
}

func (w *worker) search(ctx context.Context) (Solution, bool) {
	for {
		for i := 1; i <= w.stride; i++ {
			hash, d := Score(w.buf)
			if difficulty.IsBetter(d, w.target) {
				solution := Solution{Nonce: w.nonce, Hash: hash, Difficulty: d}
				w.count(uint64(i))
				w.advance()
				return solution, true
			}
			w.advance()
		}
		w.count(uint64(w.stride))

		if ctx.Err() != nil {
			return Solution{}, false
		}
	}
}

func (w *worker) advance() {
	candidate.IncrementNonce(&w.nonce)
	copy(w.buf[candidate.NonceOffset:candidate.NonceOffset+candidate.NonceSize], w.nonce[:])
}

func (w *worker) count(n uint64) {
	w.attempts.Add(n)
	w.meter.Add(n)
}
