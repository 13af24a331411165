//go:build !zmq

package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

func startHeadSignal(_ context.Context, addr, _ string, _ *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}
	return nil, errors.New("zmq head signal requires building with -tags zmq")
}
