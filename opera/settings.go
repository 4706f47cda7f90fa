// Package opera defines the chain-wide configuration the consensus core
// reads (spec.md §3, "Settings"). It plays the same role the teacher's
// opera/rules.go plays for Opera's DAG/EVM rules, but the fields describe
// an Nxt/Waves-style base-target retargeting chain instead of gas/DAG
// parameters.
package opera

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/andrei2312/waves-consensus/inter"
)

// Network identification constants, kept in the teacher's style
// (opera.MainNetworkID / TestNetworkID / FakeNetworkID) even though this
// consensus core never inspects them directly — they exist for the ambient
// CLI/config layer (flags, cmd/opera/launcher) to select a settings preset.
const (
	MainNetworkID uint64 = 0x1
	TestNetworkID uint64 = 0x2
	FakeNetworkID uint64 = 0x3
)

// Protocol-wide constants (spec.md §3). Unlike the per-network Settings
// fields below, these are fixed across every deployment of this consensus
// core.
const (
	// MinGeneratingBalance is the minimum effective balance (in the
	// chain's smallest unit) an account must hold to be eligible to forge.
	MinGeneratingBalance uint64 = 1000 * 100_000_000 // 1000 units at 8 decimals

	// MaxTxPerBlock bounds how many transactions Pool.Pack will place in a
	// single candidate block.
	MaxTxPerBlock = 100

	// MaxTimeDrift bounds how far an inbound block's timestamp may differ
	// from the validator's corrected clock, ahead or behind, before it is
	// rejected.
	MaxTimeDrift = 15 * time.Second

	// MaxTxAgeInPoolPast bounds how far in the past a pooled transaction's
	// timestamp may lag before it is pruned.
	MaxTxAgeInPoolPast = 60 * time.Minute

	// MaxTxAgeInPoolFuture bounds how far in the future a pooled
	// transaction's timestamp may lead before it is pruned.
	MaxTxAgeInPoolFuture = 15 * time.Second

	// AvgBlockTimeDepth is the number of trailing blocks BaseTarget's
	// retarget formula averages over.
	AvgBlockTimeDepth = 3

	// BlockVersion is the version tag the Forger stamps on freshly built
	// blocks.
	BlockVersion uint16 = 1
)

// Settings enumerates the per-network, immutable configuration options
// spec.md §3 calls out. It is deliberately flat (unlike the teacher's
// nested Rules{Dag, Epochs, Blocks, Economy}) because the consensus core
// has exactly one axis of per-network variation: block cadence and the two
// activation timestamps/heights.
type Settings struct {
	Name      string
	NetworkID uint64

	// AverageBlockDelay is the target time between blocks, constrained to
	// [1, 600] seconds by spec.md §3.
	AverageBlockDelay time.Duration

	// GeneratingBalanceDepthBumpHeight is the height at which the
	// confirmation depth used for generating-balance queries switches from
	// 50 to 1000 (spec.md §4.1, GeneratingBalance).
	GeneratingBalanceDepthBumpHeight uint64

	// MinimalGeneratingBalanceAfterTimestamp is the timestamp after which
	// the MinGeneratingBalance rule is enforced by the Validator.
	MinimalGeneratingBalanceAfterTimestamp inter.Timestamp

	// RequireSortedTransactionsAfter is the timestamp after which
	// block-embedded transactions must already be in BlockOrdering.
	RequireSortedTransactionsAfter inter.Timestamp

	// MaxTxPerBlock overrides the protocol default MaxTxPerBlock for this
	// network. Zero means "use the protocol default"; the integration
	// package's presets are the intended source of non-zero overrides.
	MaxTxPerBlock int

	// PoolPruneMaxAgePast overrides the protocol default
	// MaxTxAgeInPoolPast for this network. Zero means "use the protocol
	// default".
	PoolPruneMaxAgePast time.Duration
}

// EffectiveMaxTxPerBlock returns s.MaxTxPerBlock if set, otherwise the
// protocol default.
func (s Settings) EffectiveMaxTxPerBlock() int {
	if s.MaxTxPerBlock > 0 {
		return s.MaxTxPerBlock
	}
	return MaxTxPerBlock
}

// EffectivePoolPruneMaxAgePast returns s.PoolPruneMaxAgePast if set,
// otherwise the protocol default.
func (s Settings) EffectivePoolPruneMaxAgePast() time.Duration {
	if s.PoolPruneMaxAgePast > 0 {
		return s.PoolPruneMaxAgePast
	}
	return MaxTxAgeInPoolPast
}

// Copy returns a value copy of s. Settings has no reference-typed fields,
// so this is here only for parity with the teacher's Rules.Copy()
// convention (kept because callers holding a *Settings pass it around
// widely and copy-before-mutate is the established idiom in this codebase).
func (s Settings) Copy() Settings {
	return s
}

// Validate enforces the numeric ranges spec.md §3 documents.
func (s Settings) Validate() error {
	if s.AverageBlockDelay < time.Second || s.AverageBlockDelay > 600*time.Second {
		return fmt.Errorf("opera: average_block_delay_seconds must be in [1, 600], got %s", s.AverageBlockDelay)
	}
	return nil
}

// AverageBlockDelaySeconds returns the configured block delay truncated to
// whole seconds, the unit every kernel formula operates in.
func (s Settings) AverageBlockDelaySeconds() uint64 {
	return uint64(s.AverageBlockDelay / time.Second)
}

// String renders the settings as an indented JSON document, matching the
// teacher's convention of JSON-dumping Rules for debug/config output.
func (s Settings) String() string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Sprintf("opera.Settings{%+v}", struct{ Settings }{s})
	}
	return string(b)
}

// MainNetSettings returns the production settings preset.
func MainNetSettings() Settings {
	return Settings{
		Name:                                    "main",
		NetworkID:                               MainNetworkID,
		AverageBlockDelay:                       60 * time.Second,
		GeneratingBalanceDepthBumpHeight:        810000,
		MinimalGeneratingBalanceAfterTimestamp:  inter.FromUnixSeconds(1479168000),
		RequireSortedTransactionsAfter:          inter.FromUnixSeconds(1466667000),
	}
}

// TestNetSettings returns a preset with a much shorter block cadence and
// depth-bump height, suited to fast integration tests.
func TestNetSettings() Settings {
	return Settings{
		Name:                                    "test",
		NetworkID:                               TestNetworkID,
		AverageBlockDelay:                       15 * time.Second,
		GeneratingBalanceDepthBumpHeight:        1000,
		MinimalGeneratingBalanceAfterTimestamp:  0,
		RequireSortedTransactionsAfter:          0,
	}
}

// FakeNetSettings returns a preset for single-process/fake networks used in
// unit tests: one-second cadence, both activation timestamps already
// crossed (set to 0) so tests don't need to thread activation logic
// through every scenario.
func FakeNetSettings() Settings {
	return Settings{
		Name:                                    "fake",
		NetworkID:                               FakeNetworkID,
		AverageBlockDelay:                       1 * time.Second,
		GeneratingBalanceDepthBumpHeight:        100,
		MinimalGeneratingBalanceAfterTimestamp:  0,
		RequireSortedTransactionsAfter:          0,
	}
}
