// Package pool implements the unconfirmed transaction pool: the sole
// mutable entity in the consensus core (spec.md §5). All mutators run
// under a single mutual-exclusion region so the snapshot read at the
// start of Pack is consistent with the removals Pack itself performs.
//
// Grounded on the teacher's inter/iblockproc state types
// (BlockState/EpochState): those are always copied before mutation, never
// mutated in place under a shared reference. Pool follows the same
// discipline — Snapshot returns a copy, and Pack builds its candidate
// list from a copy rather than iterating the live map under lock.
package pool

import (
	"context"
	"sync"

	"github.com/andrei2312/waves-consensus/chain"
	"github.com/andrei2312/waves-consensus/consensus/ordering"
	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// Pool holds unconfirmed transactions awaiting inclusion in a block.
// The zero value is not usable; construct with New.
type Pool struct {
	mu       sync.Mutex
	settings opera.Settings
	validator chain.TransactionValidator
	byID     map[inter.TxID]inter.Transaction

	packing bool
}

// New constructs an empty Pool bound to settings and validator.
func New(settings opera.Settings, validator chain.TransactionValidator) *Pool {
	return &Pool{
		settings:  settings,
		validator: validator,
		byID:      make(map[inter.TxID]inter.Transaction),
	}
}

// Add inserts tx into the pool, overwriting any existing entry with the
// same ID.
func (p *Pool) Add(tx inter.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byID[tx.ID] = tx
}

// TryAdd admits tx into the pool iff the external validator currently
// accepts it (spec.md §6: a transaction reaches the pool only when it is
// externally valid). A rejection or a validator-oracle error is returned
// to the caller rather than admitting tx anyway.
func (p *Pool) TryAdd(ctx context.Context, s chain.State, tx inter.Transaction, atHeight *uint64, nowMs inter.Timestamp) (inter.Transaction, error) {
	rejected, accepted, err := p.validator.Validate(ctx, p.settings, s, []inter.Transaction{tx}, atHeight, nowMs)
	if err != nil {
		return inter.Transaction{}, err
	}
	if len(rejected) > 0 || len(accepted) == 0 {
		return inter.Transaction{}, ErrTransactionRejected
	}

	admitted := accepted[0]
	p.mu.Lock()
	p.byID[admitted.ID] = admitted
	p.mu.Unlock()
	return admitted, nil
}

// Snapshot returns a defensive copy of every transaction currently held.
func (p *Pool) Snapshot() []inter.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Pool) snapshotLocked() []inter.Transaction {
	out := make([]inter.Transaction, 0, len(p.byID))
	for _, tx := range p.byID {
		out = append(out, tx)
	}
	return out
}

// pruneLocked drops any transaction whose timestamp falls outside
// [now - settings.EffectivePoolPruneMaxAgePast(), now + MaxTxAgeInPoolFuture]. Must be called
// with mu held.
func (p *Pool) pruneLocked(nowMs inter.Timestamp) {
	maxPast := p.settings.EffectivePoolPruneMaxAgePast()
	for id, tx := range p.byID {
		age := nowMs.Sub(tx.Timestamp)
		future := tx.Timestamp.Sub(nowMs)
		if age > maxPast || future > opera.MaxTxAgeInPoolFuture {
			delete(p.byID, id)
		}
	}
}

// Prune runs the expiry step without packing a block. Intended for
// periodic maintenance and post-application cleanup.
func (p *Pool) Prune(nowMs inter.Timestamp) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pruneLocked(nowMs)
}

// RemoveApplied deletes every transaction whose ID appears in ids, then
// runs Prune.
func (p *Pool) RemoveApplied(ids []inter.TxID, nowMs inter.Timestamp) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range ids {
		delete(p.byID, id)
	}
	p.pruneLocked(nowMs)
}

// Pack assembles the next block's transaction list per spec.md §4.3: prune
// expired entries, sort by PoolOrdering, revalidate externally, truncate
// to settings.EffectiveMaxTxPerBlock(), re-sort by BlockOrdering, and revalidate once
// more since removing transactions can restore others to validity (e.g. a
// nonce/balance-order dependent validator).
//
// Pack must not be re-entered on the same Pool instance; a concurrent call
// returns an error rather than blocking, since a re-entrant packer would
// observe an inconsistent snapshot.
func (p *Pool) Pack(ctx context.Context, s chain.State, nowMs inter.Timestamp, atHeight *uint64) ([]inter.Transaction, error) {
	p.mu.Lock()
	if p.packing {
		p.mu.Unlock()
		return nil, ErrPackReentrant
	}
	p.packing = true
	defer func() {
		p.mu.Lock()
		p.packing = false
		p.mu.Unlock()
	}()

	p.pruneLocked(nowMs)
	candidates := ordering.PoolOrdering(p.snapshotLocked())
	p.mu.Unlock()

	rejected, accepted, err := p.validator.Validate(ctx, p.settings, s, candidates, atHeight, nowMs)
	if err != nil {
		return nil, err
	}
	p.removeRejected(rejected)

	if maxPerBlock := p.settings.EffectiveMaxTxPerBlock(); len(accepted) > maxPerBlock {
		accepted = accepted[:maxPerBlock]
	}
	accepted = ordering.BlockOrdering(accepted)

	rejected2, accepted2, err := p.validator.Validate(ctx, p.settings, s, accepted, atHeight, nowMs)
	if err != nil {
		return nil, err
	}
	p.removeRejected(rejected2)

	return accepted2, nil
}

func (p *Pool) removeRejected(rejected []inter.Transaction) {
	if len(rejected) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, tx := range rejected {
		delete(p.byID, tx.ID)
	}
}
