package consensus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/consensus/forger"
	"github.com/andrei2312/waves-consensus/consensus/ordering"
	"github.com/andrei2312/waves-consensus/consensus/pool"
	"github.com/andrei2312/waves-consensus/consensus/validator"
	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// Core wires the kernel, pool, forger, validator, and ordering components
// into the six operations a node calls. It holds no state of its own
// beyond its collaborators and the Pool it delegates to — everything else
// is the pure functions in consensus/kernel and consensus/ordering.
type Core struct {
	History  History
	State    State
	Builder  BlockBuilder
	Time     TimeSource
	Settings opera.Settings

	pool      *pool.Pool
	forger    *forger.Forger
	validator *validator.Validator
}

// New assembles a Core from its collaborators. txValidator is the external
// oracle Pool.Pack calls to admit or reject candidate transactions.
func New(h History, s State, b BlockBuilder, ts TimeSource, settings opera.Settings, txValidator TransactionValidator, log logrus.FieldLogger) *Core {
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := pool.New(settings, txValidator)
	return &Core{
		History:   h,
		State:     s,
		Builder:   b,
		Time:      ts,
		Settings:  settings,
		pool:      p,
		forger:    forger.New(h, s, p, b, settings, log.WithField("component", "forger")),
		validator: validator.New(h, s, settings, log.WithField("component", "validator")),
	}
}

// OnNewOffchainTransaction admits tx into the unconfirmed pool iff the
// external validator currently considers it valid at the chain's present
// height; a rejection or a validator-oracle error is returned to the
// caller instead of being admitted silently (spec.md §6). It is the only
// entry point through which a transaction ever reaches the pool (spec.md
// §3, "the consensus core adds no entries" — meaning it never synthesizes
// one, not that this operation doesn't exist).
func (c *Core) OnNewOffchainTransaction(ctx context.Context, tx inter.Transaction) (inter.Transaction, error) {
	height := c.History.Height()
	return c.pool.TryAdd(ctx, c.State, tx, &height, c.Time.CorrectedTime())
}

// TryGenerateNextBlock attempts to mint the next block on behalf of
// signer. See consensus/forger.Forger.TryGenerateNextBlock for the full
// contract: (nil, nil) means "not eligible right now", not an error.
func (c *Core) TryGenerateNextBlock(ctx context.Context, signer account.PrivateKey) (*inter.Block, error) {
	return c.forger.TryGenerateNextBlock(ctx, signer, c.Time.CorrectedTime())
}

// IsValid checks block against the current chain snapshot using the
// core's own corrected clock reading.
func (c *Core) IsValid(ctx context.Context, block *inter.Block) bool {
	return c.validator.IsValid(ctx, block, c.Time.CorrectedTime())
}

// BlockOrdering sorts txs into the canonical block layout every node
// agrees on.
func (c *Core) BlockOrdering(txs []inter.Transaction) []inter.Transaction {
	return ordering.BlockOrdering(txs)
}

// NextBlockGenerationTime projects when acc would next be entitled to
// generate a block on top of prev.
func (c *Core) NextBlockGenerationTime(prev *inter.Block, acc account.PublicKey) (inter.Timestamp, bool) {
	return ordering.NextBlockGenerationTime(c.History, c.State, c.Settings.GeneratingBalanceDepthBumpHeight, prev, acc)
}

// ClearFromUnconfirmed removes ids from the pool (typically after their
// containing block has been applied) and runs the pool's expiry pass.
func (c *Core) ClearFromUnconfirmed(ids []inter.TxID) {
	c.pool.RemoveApplied(ids, c.Time.CorrectedTime())
}

// PrunePool runs the pool's periodic expiry pass without packing a block.
func (c *Core) PrunePool() {
	c.pool.Prune(c.Time.CorrectedTime())
}
