// Package consensus assembles the kernel, pool, forger, validator, and
// ordering components into the six operations a node calls: submitting an
// offchain transaction, attempting to generate the next block, validating
// an inbound block, computing block ordering, computing a validity-window
// projection for scheduling, and clearing applied transactions from the
// pool.
//
// The collaborator interfaces (History, State, TransactionValidator,
// BlockBuilder, TimeSource) are defined in package chain and re-exported
// here by alias, so callers outside this module only ever need to import
// "consensus" while the component packages underneath avoid importing
// this package back (which would create a cycle, since Core imports
// kernel/pool/forger/validator/ordering).
package consensus

import "github.com/andrei2312/waves-consensus/chain"

type (
	History              = chain.History
	State                = chain.State
	TransactionValidator = chain.TransactionValidator
	BlockBuilder         = chain.BlockBuilder
	TimeSource           = chain.TimeSource
)
