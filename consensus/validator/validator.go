// Package validator implements is_valid (spec.md §4.4): the eight-step
// check list an inbound block must pass, evaluated in order with
// short-circuit rejection. Every non-fatal rejection is logged and
// returns false; only genuinely unexpected collaborator failures are
// re-raised (spec.md §7, "Fatal").
//
// Grounded on the teacher's opera/rules_test.go table-driven assertion
// style (mirrored in validator_test.go) and its "many small guard
// clauses" validation philosophy.
package validator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/andrei2312/waves-consensus/chain"
	"github.com/andrei2312/waves-consensus/consensus/kernel"
	"github.com/andrei2312/waves-consensus/consensus/ordering"
	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// Validator checks inbound blocks against a chain snapshot.
type Validator struct {
	History  chain.History
	State    chain.State
	Settings opera.Settings
	Log      logrus.FieldLogger
}

// New constructs a Validator. log may be nil, in which case
// logrus.StandardLogger() is used.
func New(h chain.History, s chain.State, settings opera.Settings, log logrus.FieldLogger) *Validator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Validator{History: h, State: s, Settings: settings, Log: log}
}

// IsValid runs the eight-step check list of spec.md §4.4 against block,
// using nowMs as the validator's own corrected clock reading. ctx is
// forwarded to no collaborator today but is accepted for symmetry with the
// rest of the core's blocking operations and future extension.
func (v *Validator) IsValid(ctx context.Context, block *inter.Block, nowMs inter.Timestamp) bool {
	if !v.withinTimeDrift(block, nowMs) {
		v.reject(block, "block timestamp outside allowed drift")
		return false
	}

	if block.Timestamp > v.Settings.RequireSortedTransactionsAfter {
		if !ordering.IsBlockOrdered(block.Transactions) {
			v.reject(block, "transactions not sorted by block ordering")
			return false
		}
	}

	parent, ok := v.History.BlockByID(block.ParentID)
	if !ok {
		if v.History.Height() == 1 {
			// Genesis case: no parent to check against.
			return true
		}
		v.reject(block, "parent block not found")
		return false
	}

	parentHeight, ok := v.History.HeightOf(parent.ID)
	if !ok {
		v.reject(block, "parent height not found")
		return false
	}

	wantBT := kernel.BaseTarget(v.History, v.Settings.AverageBlockDelaySeconds(), parent, block.Timestamp)
	if block.Consensus.BaseTarget != wantBT {
		v.reject(block, "base_target mismatch")
		return false
	}

	wantGS := kernel.GeneratorSignature(parent.Consensus, block.Generator)
	if block.Consensus.GenerationSignature != wantGS {
		v.reject(block, "generation_signature mismatch")
		return false
	}

	effBal := kernel.GeneratingBalance(v.State, v.Settings.GeneratingBalanceDepthBumpHeight, block.Generator, parentHeight)
	if block.Timestamp >= v.Settings.MinimalGeneratingBalanceAfterTimestamp {
		if effBal < opera.MinGeneratingBalance {
			v.reject(block, "generator below minimum generating balance")
			return false
		}
	}

	hitV := kernel.Hit(parent.Consensus, block.Generator)
	tgtV := kernel.Target(parent, block.Timestamp, effBal)
	if hitV.Cmp(tgtV) >= 0 {
		v.reject(block, "hit does not clear target")
		return false
	}

	return true
}

func (v *Validator) withinTimeDrift(block *inter.Block, nowMs inter.Timestamp) bool {
	drift := block.Timestamp.Sub(nowMs)
	if drift < 0 {
		drift = -drift
	}
	return drift < opera.MaxTimeDrift
}

func (v *Validator) reject(block *inter.Block, reason string) {
	v.Log.WithFields(logrus.Fields{
		"block":  block.ID.String(),
		"reason": reason,
	}).Error("validator: rejecting block")
}
