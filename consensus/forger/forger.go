// Package forger implements try_generate_next_block (spec.md §4.2): the
// only operation that produces new blocks. It recovers silently from the
// two conditions the spec calls non-fatal — a vanished chain tip and a
// generator below the minimum generating balance — and propagates
// everything else.
//
// Errors from Pool.Pack and BlockBuilder.BuildAndSign (other than
// ErrChainTipVanished) are returned to the caller unchanged; the
// ineligible-to-forge path is an ordinary (nil, nil) result, never an error
// or a panic.
package forger

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/chain"
	"github.com/andrei2312/waves-consensus/consensus/kernel"
	"github.com/andrei2312/waves-consensus/consensus/pool"
	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// Forger attempts to produce the next block on top of the current chain
// tip on behalf of a single local account.
type Forger struct {
	History  chain.History
	State    chain.State
	Pool     *pool.Pool
	Builder  chain.BlockBuilder
	Settings opera.Settings
	Log      logrus.FieldLogger
}

// New constructs a Forger from its collaborators. log may be nil, in
// which case logrus.StandardLogger() is used.
func New(h chain.History, s chain.State, p *pool.Pool, b chain.BlockBuilder, settings opera.Settings, log logrus.FieldLogger) *Forger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Forger{History: h, State: s, Pool: p, Builder: b, Settings: settings, Log: log}
}

// TryGenerateNextBlock attempts to mint the next block for signer, using
// nowMs as the corrected clock reading. It returns (nil, nil) whenever
// generation is legitimately not possible right now — the caller must not
// treat that as an error.
func (f *Forger) TryGenerateNextBlock(ctx context.Context, signer account.PrivateKey, nowMs inter.Timestamp) (*inter.Block, error) {
	last, ok := f.History.LastBlock()
	if !ok {
		f.Log.Debug("forger: chain tip vanished, skipping this attempt")
		return nil, nil
	}
	height, ok := f.History.HeightOf(last.ID)
	if !ok {
		f.Log.Debug("forger: chain tip height vanished, skipping this attempt")
		return nil, nil
	}

	balance := kernel.GeneratingBalance(f.State, f.Settings.GeneratingBalanceDepthBumpHeight, signer.Public, height)
	if balance < opera.MinGeneratingBalance {
		f.Log.WithFields(logrus.Fields{
			"generator": signer.Public.String(),
			"balance":   balance,
		}).Debug("forger: generator below minimum generating balance")
		return nil, nil
	}

	hitV := kernel.Hit(last.Consensus, signer.Public)
	tgtV := kernel.Target(last, nowMs, balance)
	if hitV.Cmp(tgtV) >= 0 {
		return nil, nil
	}

	bt := kernel.BaseTarget(f.History, f.Settings.AverageBlockDelaySeconds(), last, nowMs)
	gs := kernel.GeneratorSignature(last.Consensus, signer.Public)

	txs, err := f.Pool.Pack(ctx, f.State, nowMs, &height)
	if err != nil {
		return nil, err
	}

	block, err := f.Builder.BuildAndSign(opera.BlockVersion, nowMs, last.ID, inter.ConsensusData{BaseTarget: bt, GenerationSignature: gs}, txs, signer)
	if err != nil {
		if errors.Is(err, ErrChainTipVanished) {
			f.Log.Debug("forger: chain tip vanished mid-build, skipping this attempt")
			return nil, nil
		}
		return nil, err
	}
	return block, nil
}
