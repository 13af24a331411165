package model

import "errors"

var (
	// ErrTransient marks failures of an unavailable backend that are retried by re-fetching the head.
	ErrTransient = errors.New("transient ledger error")
	// ErrRejected marks a submission the ledger refused, usually because another miner won the block.
	ErrRejected = errors.New("submission rejected")
	// ErrEncoding marks a chain state or record whose fields violate their width or range.
	ErrEncoding = errors.New("encoding error")
	// ErrStorage marks a failure of the commitment trie backend.
	ErrStorage = errors.New("storage error")
)
