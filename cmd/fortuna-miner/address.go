package main

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/credential"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"go.uber.org/zap"
)

type addressCommand struct {
	MinerAddress string `long:"miner-address" env:"FORTUNA_MINER_ADDRESS" description:"bech32 miner address" required:"true"`
}

func runAddress(network model.Network, cfg addressCommand, logger *zap.Logger) error {
	paymentKeyHash, err := credential.PaymentKeyHash(cfg.MinerAddress, network)
	if err != nil {
		return fmt.Errorf("miner address: %w", err)
	}
	credentialHash, err := credential.Hash(paymentKeyHash)
	if err != nil {
		return err
	}
	logger.Info("miner credential",
		zap.String("address", cfg.MinerAddress),
		zap.String("payment_key_hash", hex.EncodeToString(paymentKeyHash)),
		zap.String("credential_hash", hex.EncodeToString(credentialHash[:])),
	)
	return nil
}
