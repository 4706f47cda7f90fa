// Package kernel implements the consensus core's pure arithmetic: hit and
// target derivation, base-target retargeting, generation-signature
// chaining, and generating-balance lookup. Every function here is a pure
// function over snapshots of chain.History/chain.State — no I/O, no
// mutation, safe to call concurrently without coordination.
//
// Grounded on the pack repo kaspanet-kaspad's blockdag/difficulty.go: both
// retarget an integer difficulty parameter against a trailing block-time
// window using math/big for the parts that would otherwise overflow 64
// bits.
package kernel

import (
	"math"
	"math/big"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/chain"
	"github.com/andrei2312/waves-consensus/digest"
	"github.com/andrei2312/waves-consensus/inter"
)

// AvgBlockTimeDepth is the number of trailing blocks the retarget formula's
// blocktime_avg_s samples over.
const AvgBlockTimeDepth = 3

// MaxBaseTarget returns the largest base_target permitted for a chain whose
// average block delay is avgDelaySeconds, i.e. math.MaxInt64 / avgDelaySeconds.
func MaxBaseTarget(avgDelaySeconds uint64) uint64 {
	if avgDelaySeconds == 0 {
		return 0
	}
	return uint64(math.MaxInt64) / avgDelaySeconds
}

// GeneratorSignature derives the 32-byte generation signature a candidate
// generator would stamp on a block extending parent: Digest(parent's
// generation signature || generator's public key). Deterministic: the same
// inputs always yield the same output.
func GeneratorSignature(parent inter.ConsensusData, generator account.PublicKey) [32]byte {
	return digest.Sum(parent.GenerationSignature[:], generator.Bytes())
}

// Hit derives a generator-specific pseudorandom integer in [0, 2^64) from
// the first 8 bytes of GeneratorSignature(parent, generator), reversed
// (little-endian interpretation) and read as an unsigned integer.
func Hit(parent inter.ConsensusData, generator account.PublicKey) *big.Int {
	sig := GeneratorSignature(parent, generator)
	first8 := sig[:8]
	reversed := make([]byte, 8)
	for i := 0; i < 8; i++ {
		reversed[i] = first8[7-i]
	}
	return new(big.Int).SetBytes(reversed)
}

// Target computes the eligibility threshold a candidate generator's Hit
// must fall below to be entitled to mint the next block after prev.
//
// eta is computed with plain int64 division (Go truncates toward zero,
// matching the source's integer-division convention), so target can go
// negative when nowMs precedes prev's timestamp; no clamping is applied —
// Hit is always >= 0, so a negative or zero target simply denies
// generation (spec §7 / REDESIGN FLAGS).
func Target(prev *inter.Block, nowMs inter.Timestamp, effectiveBalance uint64) *big.Int {
	eta := (int64(nowMs) - int64(prev.Timestamp)) / 1000
	t := new(big.Int).SetUint64(prev.Consensus.BaseTarget)
	t.Mul(t, big.NewInt(eta))
	t.Mul(t, new(big.Int).SetUint64(effectiveBalance))
	return t
}

// normalize scales a limit constant defined against a 60-second reference
// cadence to the chain's actual average_block_delay_seconds. It is the
// core's only floating-point arithmetic, used solely to derive min_limit,
// max_limit, and gamma below.
//
// Changing avg_delay_s away from the values this core ships with requires
// re-verifying rounding parity against any other implementation this
// chain interoperates with (spec.md REDESIGN FLAGS).
func normalize(v, avgDelaySeconds float64) float64 {
	return v * avgDelaySeconds / 60
}

// BaseTarget computes the base_target the next block after prev must carry.
// It retargets only when height(prev) is even (i.e. on odd child heights,
// genesis counted as height 1); otherwise it returns prev's base_target
// unchanged.
func BaseTarget(h chain.History, avgDelaySeconds uint64, prev *inter.Block, nowMs inter.Timestamp) uint64 {
	prevHeight, ok := h.HeightOf(prev.ID)
	if !ok || prevHeight%2 != 0 {
		return prev.Consensus.BaseTarget
	}

	avg := float64(avgDelaySeconds)
	minLimit := normalize(53, avg)
	maxLimit := normalize(67, avg)
	gamma := normalize(64, avg)

	var blocktimeAvgS float64
	if anchor, ok := h.Parent(prev, AvgBlockTimeDepth-1); ok {
		blocktimeAvgS = float64((int64(nowMs)-int64(anchor.Timestamp))/AvgBlockTimeDepth) / 1000
	} else {
		blocktimeAvgS = float64(int64(nowMs)-int64(prev.Timestamp)) / 1000
	}

	prevBT := float64(prev.Consensus.BaseTarget)
	var bt float64
	if blocktimeAvgS > avg {
		bt = prevBT * math.Min(blocktimeAvgS, maxLimit) / avg
	} else {
		bt = prevBT - prevBT*gamma*(avg-math.Max(blocktimeAvgS, minLimit))/(avg*100)
	}

	truncated := int64(bt) // truncation toward zero, matching Go's float->int conversion
	if truncated < 1 {
		truncated = 0
		if prev.Consensus.BaseTarget > 0 {
			truncated = 1 // a non-zero base_target never retargets to zero
		}
	}
	result := uint64(truncated)
	if max := MaxBaseTarget(avgDelaySeconds); result > max {
		result = max
	}
	return result
}

// GeneratingBalance returns account's effective balance at atHeight, using
// a confirmation depth of 1000 once atHeight reaches bumpHeight (the
// chain's GeneratingBalanceDepthBumpHeight setting), or 50 before that.
func GeneratingBalance(s chain.State, bumpHeight uint64, acc account.PublicKey, atHeight uint64) uint64 {
	depth := uint64(50)
	if atHeight >= bumpHeight {
		depth = 1000
	}
	return s.EffectiveBalanceWithConfirmations(acc, atHeight, depth)
}
