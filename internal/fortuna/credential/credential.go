// Package credential derives the miner identity committed into every candidate.
package credential

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/plutus"
	"golang.org/x/crypto/blake2b"
)

const (
	// Tag is the fixed message paired with the payment key hash.
	Tag = "AlL HaIl tUnA"

	// KeyHashSize is the width of a Cardano payment key hash.
	KeyHashSize = 28

	mainnetHRP = "addr"
	testnetHRP = "addr_test"
)

// PaymentKeyHash extracts the payment key hash from a bech32 Shelley address and checks
// that the address belongs to network.
func PaymentKeyHash(address string, network model.Network) ([]byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(address)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("convert address bits: %w", err)
	}
	if len(raw) < 1+KeyHashSize {
		return nil, fmt.Errorf("address payload has %d bytes", len(raw))
	}

	header := raw[0]
	addrType, networkID := header>>4, header&0x0f
	if addrType > 7 {
		return nil, fmt.Errorf("address type %d has no payment credential", addrType)
	}
	if addrType&1 == 1 {
		return nil, fmt.Errorf("payment credential of address type %d is a script", addrType)
	}

	wantHRP, wantID := testnetHRP, byte(0)
	if network == model.Mainnet {
		wantHRP, wantID = mainnetHRP, 1
	}
	if hrp != wantHRP || networkID != wantID {
		return nil, fmt.Errorf("address %s (network id %d) does not belong to %s", hrp, networkID, network)
	}

	return append([]byte(nil), raw[1:1+KeyHashSize]...), nil
}

// Datum is the miner credential record carried by the redeemer.
func Datum(paymentKeyHash []byte) plutus.Constr {
	return plutus.NewConstr(0, paymentKeyHash, []byte(Tag))
}

// Hash is the blake2b-256 digest of the encoded credential datum.
func Hash(paymentKeyHash []byte) ([model.HashSize]byte, error) {
	if len(paymentKeyHash) != KeyHashSize {
		return [model.HashSize]byte{}, fmt.Errorf("payment key hash has %d bytes, want %d", len(paymentKeyHash), KeyHashSize)
	}
	raw, err := plutus.Marshal(Datum(paymentKeyHash))
	if err != nil {
		return [model.HashSize]byte{}, fmt.Errorf("encode credential: %w", err)
	}
	return blake2b.Sum256(raw), nil
}
