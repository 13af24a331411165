package transport

import "github.com/goodnatureofminers/fortuna-miner/internal/fortuna/service/miner"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusSource interface {
		Status() miner.Status
	}
)
