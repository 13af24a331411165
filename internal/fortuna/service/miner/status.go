package miner

import "time"

// Stage is a state of the mining loop.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageFetchHead  Stage = "fetch_head"
	StageSearching  Stage = "searching"
	StageFound      Stage = "found"
	StageSubmitting Stage = "submitting"
	StageStale      Stage = "stale"
)

// Status is a point-in-time view of the miner.
type Status struct {
	Network          string    `json:"network"`
	Stage            Stage     `json:"stage"`
	BlockNumber      uint64    `json:"block_number"`
	LeadingZeros     uint64    `json:"leading_zeros"`
	DifficultyNumber uint64    `json:"difficulty_number"`
	Attempts         uint64    `json:"attempts"`
	Found            uint64    `json:"found"`
	Submitted        uint64    `json:"submitted"`
	LastTxHash       string    `json:"last_tx_hash,omitempty"`
	LastError        string    `json:"last_error,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}
