// Package ordering implements the two total, deterministic transaction
// orderings the pool and validator agree on, plus the sibling-block
// fork-choice comparison and next-block-time projection (spec.md §4.5).
//
// Grounded on the sort.Slice comparator idiom used throughout the teacher
// (e.g. opera/rules.go's deterministic upgrade-bit ordering): a single
// less-func over a stable field tuple, no custom sort implementation.
package ordering

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/chain"
	"github.com/andrei2312/waves-consensus/consensus/kernel"
	"github.com/andrei2312/waves-consensus/inter"
)

// PoolOrdering sorts txs by descending fee-per-byte, breaking ties by
// ascending id (lexicographic byte comparison). The input slice is sorted
// in place and also returned for chaining.
func PoolOrdering(txs []inter.Transaction) []inter.Transaction {
	sort.SliceStable(txs, func(i, j int) bool {
		fi, fj := txs[i].FeePerByte(), txs[j].FeePerByte()
		if fi != fj {
			return fi > fj
		}
		return bytes.Compare(txs[i].ID[:], txs[j].ID[:]) < 0
	})
	return txs
}

// BlockOrdering sorts txs into the canonical block layout: ascending by
// (sender, timestamp, id). This is the external contract spec.md §4.3
// leaves open beyond "total, pure, and identical on every node" — this
// implementation picks a concrete key tuple that satisfies that contract.
func BlockOrdering(txs []inter.Transaction) []inter.Transaction {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if c := bytes.Compare(a.Sender[:], b.Sender[:]); c != 0 {
			return c < 0
		}
		if a.Timestamp != b.Timestamp {
			return a.Timestamp < b.Timestamp
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
	return txs
}

// IsBlockOrdered reports whether txs is already sorted per BlockOrdering,
// without mutating the input. Used by the validator to check condition 2
// of spec.md §4.4.
func IsBlockOrdered(txs []inter.Transaction) bool {
	return sort.SliceIsSorted(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if c := bytes.Compare(a.Sender[:], b.Sender[:]); c != 0 {
			return c < 0
		}
		if a.Timestamp != b.Timestamp {
			return a.Timestamp < b.Timestamp
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
}

// NextBlockGenerationTime projects when acc would next be entitled to
// generate a block on top of prev, or ok=false if acc holds no generating
// balance or the projection overflows the valid range (spec.md §4.5).
func NextBlockGenerationTime(h chain.History, s chain.State, bumpHeight uint64, prev *inter.Block, acc account.PublicKey) (t inter.Timestamp, ok bool) {
	height, found := h.HeightOf(prev.ID)
	if !found {
		return 0, false
	}
	bal := kernel.GeneratingBalance(s, bumpHeight, acc, height)
	if bal == 0 {
		return 0, false
	}

	hit := kernel.Hit(prev.Consensus, acc)
	numerator := new(big.Int).Mul(hit, big.NewInt(1000))
	denominator := new(big.Int).Mul(new(big.Int).SetUint64(prev.Consensus.BaseTarget), new(big.Int).SetUint64(bal))
	if denominator.Sign() == 0 {
		return 0, false
	}
	quotient := new(big.Int).Div(numerator, denominator)
	result := new(big.Int).Add(quotient, big.NewInt(int64(prev.Timestamp)))

	if result.Sign() <= 0 || !result.IsInt64() {
		return 0, false
	}
	return inter.Timestamp(result.Int64()), true
}

// Compare orders two blocks sharing the same parent by the pair (score,
// -projected_generation_time), ascending score then ascending negated
// time, where projected_generation_time falls back to b.Timestamp when
// NextBlockGenerationTime is undefined. It returns -1, 0, or 1 the way
// sort.Interface-style comparators do; the caller picks the block Compare
// ranks greater.
func Compare(h chain.History, s chain.State, bumpHeight uint64, parent, b1, b2 *inter.Block) int {
	if b1.Score != b2.Score {
		if b1.Score < b2.Score {
			return -1
		}
		return 1
	}

	t1 := projectedTime(h, s, bumpHeight, parent, b1)
	t2 := projectedTime(h, s, bumpHeight, parent, b2)
	// ascending negated time == descending time
	if t1 != t2 {
		if t1 > t2 {
			return -1
		}
		return 1
	}
	return 0
}

func projectedTime(h chain.History, s chain.State, bumpHeight uint64, parent, b *inter.Block) inter.Timestamp {
	if t, ok := NextBlockGenerationTime(h, s, bumpHeight, parent, b.Generator); ok {
		return t
	}
	return b.Timestamp
}
