package model

import "fmt"

// Network names the Cardano network the miner runs against.
type Network string

const (
	Mainnet Network = "mainnet"
	Preview Network = "preview"
)

// ParseNetwork validates a network name.
func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case Mainnet, Preview:
		return Network(s), nil
	default:
		return "", fmt.Errorf("unsupported network %q", s)
	}
}

// RootFile is the default commitment root output for the network.
func (n Network) RootFile() string {
	if n == Preview {
		return "currentPreviewRoot.txt"
	}
	return "currentRoot.txt"
}

// HistoryFile is the default V1 history export for the network.
func (n Network) HistoryFile() string {
	if n == Preview {
		return "V1PreviewHistory.json"
	}
	return "V1History.json"
}
