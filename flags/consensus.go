package flags

import (
	"time"

	"gopkg.in/urfave/cli.v1"
)

// ConsensusFlags exposes opera.Settings and pool-capacity knobs as CLI
// flags, following the same cli.XxxFlag{Name, Usage, Value} idiom as
// CommonFlags/NetworkFlags/NodeFlags.
func ConsensusFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "consensus.blockdelay",
			Usage: "Target average time between blocks, in seconds (1-600)",
			Value: 60,
		},
		cli.Uint64Flag{
			Name:  "consensus.balancedepthbump",
			Usage: "Chain height at which the generating-balance confirmation depth switches from 50 to 1000",
			Value: 810000,
		},
		cli.Int64Flag{
			Name:  "consensus.minbalanceafter",
			Usage: "Unix timestamp (seconds) after which the minimum generating balance rule is enforced",
		},
		cli.Int64Flag{
			Name:  "consensus.sortedtxsafter",
			Usage: "Unix timestamp (seconds) after which block transactions must already be in canonical order",
		},
		cli.IntFlag{
			Name:  "consensus.maxtxperblock",
			Usage: "Maximum number of transactions Pool.Pack places into one candidate block",
			Value: 100,
		},
		cli.DurationFlag{
			Name:  "consensus.prunepast",
			Usage: "Maximum age a pooled transaction may reach, relative to the corrected clock, before it is pruned",
			Value: 60 * time.Minute,
		},
		cli.StringFlag{
			Name:  "preset",
			Usage: "Named resource preset to apply on top of defaults and flags (lite|full|archive|default)",
			Value: "default",
		},
		cli.IntFlag{
			Name:  "fakenet",
			Usage: "Number of synthetic validators to generate for a local fakenet (0 disables fakenet)",
		},
	}
}
