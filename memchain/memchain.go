// Package memchain provides in-memory History and State reference
// implementations: an append-only block list and a current-balance
// ledger, suitable for tests, fake networks, and the launcher's forge
// dry-run command.
//
// Loosely grounded on the teacher's inter/iblockproc/decided_state.go
// (BlockState/EpochState). Chain and Ledger are each guarded by their own
// mutex; Chain's reads return the stored *inter.Block pointers, not
// copies.
package memchain

import (
	"sync"
	"time"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// Chain is an in-memory, append-only implementation of chain.History.
type Chain struct {
	mu      sync.RWMutex
	blocks  []*inter.Block
	heights map[inter.BlockID]uint64
}

// NewChain constructs a Chain seeded with genesis at height 1.
func NewChain(genesis *inter.Block) *Chain {
	return &Chain{
		blocks:  []*inter.Block{genesis},
		heights: map[inter.BlockID]uint64{genesis.ID: 1},
	}
}

// Append adds b as the new chain tip, at height Height()+1.
func (c *Chain) Append(b *inter.Block) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocks = append(c.blocks, b)
	c.heights[b.ID] = uint64(len(c.blocks))
}

func (c *Chain) LastBlock() (*inter.Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.blocks) == 0 {
		return nil, false
	}
	return c.blocks[len(c.blocks)-1], true
}

func (c *Chain) BlockByID(id inter.BlockID) (*inter.Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, b := range c.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

func (c *Chain) HeightOf(id inter.BlockID) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.heights[id]
	return h, ok
}

func (c *Chain) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return uint64(len(c.blocks))
}

func (c *Chain) Parent(b *inter.Block, depth uint64) (*inter.Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.heights[b.ID]
	if !ok || depth >= h {
		return nil, false
	}
	target := h - depth
	for _, cand := range c.blocks {
		if c.heights[cand.ID] == target {
			return cand, true
		}
	}
	return nil, false
}

// Ledger is an in-memory implementation of chain.State: a single
// current-balance table with no historical confirmation tracking. It
// treats effective_balance_with_confirmations as an alias for the current
// balance, which is sufficient for tests and fake networks that don't
// need to model balance movement across confirmation windows.
type Ledger struct {
	mu       sync.RWMutex
	balances map[account.PublicKey]uint64
}

// NewLedger constructs a Ledger seeded from validators.
func NewLedger(validators []account.Validator) *Ledger {
	l := &Ledger{balances: make(map[account.PublicKey]uint64, len(validators))}
	for _, v := range validators {
		l.balances[v.PublicKey] = v.Stake.Uint64()
	}
	return l
}

// Set overwrites acc's balance.
func (l *Ledger) Set(acc account.PublicKey, balance uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[acc] = balance
}

func (l *Ledger) EffectiveBalanceWithConfirmations(acc account.PublicKey, atHeight, depth uint64) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[acc]
}

// WallClock is a chain.TimeSource backed by the local system clock. It
// exists for the launcher's forge dry-run command, where no NTP-corrected
// clock service is wired in yet; production deployments should replace it
// with a real corrected-time source before forging against a live network.
type WallClock struct{}

// CorrectedTime returns the current wall-clock time.
func (WallClock) CorrectedTime() inter.Timestamp {
	return inter.FromUnixNano(time.Now().UnixNano())
}

// FromGenesis builds a Chain and Ledger pair seeded from g, along with the
// genesis block itself.
func FromGenesis(g opera.Genesis) (*Chain, *Ledger, *inter.Block) {
	genesis := &inter.Block{
		Timestamp: g.GenesisTimestamp,
		Consensus: inter.ConsensusData{BaseTarget: g.GenesisBaseTarget},
	}
	return NewChain(genesis), NewLedger(g.InitialStakes), genesis
}
