// Package chain declares the read-only collaborator interfaces the
// consensus core is built against (spec.md §6): History and State are
// pure, immutable-snapshot views into a larger node the core never
// mutates; TransactionValidator and BlockBuilder are oracles the core
// calls but does not implement; TimeSource is the sole clock the core is
// allowed to read.
//
// These live in their own package (rather than inside package consensus)
// so that kernel, pool, forger, validator, and ordering can each depend on
// the interfaces without creating an import cycle back through the
// consensus façade that wires them together.
package chain

import (
	"context"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// History exposes sparse, pure reads over the confirmed chain.
type History interface {
	// LastBlock returns the current chain tip, or ok=false if the chain is
	// empty (should not happen once genesis is applied, but callers must
	// still treat it as the "stale view" case per spec.md §7).
	LastBlock() (block *inter.Block, ok bool)
	// BlockByID looks up a block by its content-hash ID.
	BlockByID(id inter.BlockID) (block *inter.Block, ok bool)
	// Parent returns the ancestor of b at the given depth (depth=1 is b's
	// immediate parent).
	Parent(b *inter.Block, depth uint64) (block *inter.Block, ok bool)
	// HeightOf returns the height of the block with the given ID, where
	// genesis is height 1.
	HeightOf(id inter.BlockID) (height uint64, ok bool)
	// Height returns the current chain height.
	Height() uint64
}

// State exposes balance queries against a point-in-time chain view.
type State interface {
	// EffectiveBalanceWithConfirmations returns acc's balance as counted
	// at atHeight, restricted to balance that has been stable for depth
	// confirmations (spec.md GLOSSARY, "Effective balance").
	EffectiveBalanceWithConfirmations(acc account.PublicKey, atHeight, depth uint64) uint64
}

// TransactionValidator is the external, leveled transaction validator
// treated as an oracle: given a candidate set of transactions it returns
// which are rejected and which remain valid.
type TransactionValidator interface {
	Validate(ctx context.Context, settings opera.Settings, s State, txs []inter.Transaction, atHeight *uint64, nowMs inter.Timestamp) (rejected, accepted []inter.Transaction, err error)
}

// BlockBuilder produces and signs a block from consensus data assembled by
// the Forger. The consensus core never inspects the signing algorithm.
type BlockBuilder interface {
	BuildAndSign(version uint16, timestamp inter.Timestamp, parentID inter.BlockID, cons inter.ConsensusData, txs []inter.Transaction, signer account.PrivateKey) (*inter.Block, error)
}

// TimeSource is the sole clock the consensus core is allowed to read. It
// must return an NTP-corrected, monotonic-per-process value so tests can
// substitute a deterministic fake (spec.md §5, "Clock").
type TimeSource interface {
	CorrectedTime() inter.Timestamp
}
