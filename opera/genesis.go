package opera

import (
	"math/big"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/inter"
)

// Genesis bundles the settings a network launches with plus its initial
// block and validator set.
//
// Adapted from the teacher's opera/genesis.Rules: that struct mixed EVM gas
// economics, epoch rotation, and upgrade heights into one type. This
// consensus core only needs the pieces that feed the kernel/forger/
// validator: the settings themselves, the genesis block's own
// ConsensusData (there is no parent to retarget from), and the initial
// stake distribution a test State implementation seeds from.
type Genesis struct {
	Settings Settings

	// GenesisTimestamp is the timestamp stamped on the network's first
	// block.
	GenesisTimestamp inter.Timestamp

	// GenesisBaseTarget is the base_target the first real block retargets
	// against; spec.md doesn't define a formula for block 1 since there is
	// no parent block-time window yet, so this is a network parameter.
	GenesisBaseTarget uint64

	// InitialStakes seeds a State implementation's balance ledger.
	InitialStakes []account.Validator
}

// MainNetGenesis returns the production genesis bundle.
func MainNetGenesis() Genesis {
	return Genesis{
		Settings:          MainNetSettings(),
		GenesisTimestamp:  inter.FromUnixSeconds(1465742577),
		GenesisBaseTarget: 153722867,
	}
}

// FakeNetGenesis returns a genesis bundle for n synthetic validators, each
// funded with balance, suitable for tests and local fake networks.
//
// Mirrors the teacher's NetworkDefaults.FakeNetSize convention (a single
// integer that expands into n deterministic validator configs).
func FakeNetGenesis(n int, balance *big.Int) Genesis {
	g := Genesis{
		Settings:          FakeNetSettings(),
		GenesisTimestamp:  0,
		GenesisBaseTarget: 153722867,
	}
	for i := 0; i < n; i++ {
		g.InitialStakes = append(g.InitialStakes, account.Validator{
			PublicKey: account.FakeKey(i).Public,
			Stake:     new(big.Int).Set(balance),
		})
	}
	return g
}
