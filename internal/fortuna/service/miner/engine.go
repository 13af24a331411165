package miner

import (
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/search"
)

type searchEngine struct {
	engine *search.Engine
}

// NewSearchEngine exposes a search.Engine to the miner.
func NewSearchEngine(engine *search.Engine) Engine {
	return searchEngine{engine: engine}
}

func (e searchEngine) Start(encoded []byte, target difficulty.Difficulty) (Run, error) {
	run, err := e.engine.Start(encoded, target)
	if err != nil {
		return nil, err
	}
	return run, nil
}
