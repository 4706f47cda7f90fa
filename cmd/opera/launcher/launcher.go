package launcher

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/consensus"
	"github.com/andrei2312/waves-consensus/flags"
	"github.com/andrei2312/waves-consensus/integration"
	"github.com/andrei2312/waves-consensus/logging"
	"github.com/andrei2312/waves-consensus/memchain"
	"github.com/andrei2312/waves-consensus/opera"
)

var app = flags.NewApp()

func init() {
	app.Flags = append(app.Flags,
		flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.NetworkFlags()...)
	app.Flags = append(app.Flags, flags.NodeFlags()...)
	app.Flags = append(app.Flags, flags.ConsensusFlags()...)
	app.Commands = []cli.Command{forgeCommand}
	app.Action = func(ctx *cli.Context) error {
		return errors.New("opera launcher: no command given (try `forge`); full node startup not implemented yet")
	}
}

// forgeCommand spins up an in-memory fakenet chain and repeatedly attempts
// to forge the next block on it, printing whichever validators become
// eligible over the run — a smoke test for the consensus.Core wiring that
// needs no network, storage, or gossip layer.
var forgeCommand = cli.Command{
	Name:  "forge",
	Usage: "Run a local in-memory fakenet and forge blocks against it",
	Flags: flags.ConsensusFlags(),
	Action: func(ctx *cli.Context) error {
		return runForgeDryRun(ctx)
	},
}

func runForgeDryRun(ctx *cli.Context) error {
	cfg := MakeAllConfigs(ctx)

	log, err := logging.New(logging.Config{
		Verbosity: cfg.Node.Logging.Verbosity,
		JSON:      cfg.Node.Logging.Format == "json",
		Color:     cfg.Node.Logging.Color,
		SentryDSN: cfg.Node.Logging.SentryDSN,
	})
	if err != nil {
		fmt.Println("logging: continuing without Sentry hook:", err)
	}

	preset, err := integration.GetPresetByName(cfg.Preset)
	if err != nil {
		return err
	}
	resources := integration.DefaultPreset()
	integration.ApplyPreset(&resources, preset)
	cfg.Consensus.MaxTxPerBlock = resources.MaxTxPerBlock
	cfg.Consensus.PrunePastMaxAge = resources.PrunePeriod

	validatorCount := cfg.FakeNetSize
	if validatorCount <= 0 {
		validatorCount = 4
	}
	genesis := opera.FakeNetGenesis(validatorCount, big.NewInt(int64(opera.MinGeneratingBalance)*10))
	genesis.Settings = cfg.Consensus.Settings("fakenet", opera.FakeNetworkID)

	history, ledger, _ := memchain.FromGenesis(genesis)
	clock := memchain.WallClock{}
	core := consensus.New(history, ledger, memchain.Builder{}, clock, genesis.Settings, memchain.PermissiveValidator{}, log)

	stop := make(chan struct{})
	defer close(stop)
	go runPrunerLoop(core, cfg.Consensus.PrunePastMaxAge, stop)

	ctxBg := context.Background()
	produced := 0
	for attempt := 0; attempt < validatorCount*4 && produced < 3; attempt++ {
		signer := account.FakeKey(attempt % validatorCount)
		block, err := core.TryGenerateNextBlock(ctxBg, signer)
		if err != nil {
			return fmt.Errorf("forge: %w", err)
		}
		if block == nil {
			continue
		}
		if !core.IsValid(ctxBg, block) {
			return errors.New("forge: freshly produced block failed its own validation")
		}
		history.Append(block)
		produced++
		log.WithField("height", history.Height()).Infof("forged block by validator %d", attempt%validatorCount)
	}

	if produced == 0 {
		log.Warn("forge: no validator became eligible during this dry run")
	}
	return nil
}

func runPrunerLoop(core *consensus.Core, period time.Duration, stop <-chan struct{}) {
	if period <= 0 {
		period = time.Minute
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			core.PrunePool()
		case <-stop:
			return
		}
	}
}

// Launch parses CLI flags and runs the selected command. Only "forge" does
// real work today; running with no subcommand reports that full node
// startup (transport, storage, gossip) isn't implemented yet.
func Launch(args []string) error {
	if err := app.Run(args); err != nil {
		fmt.Println("App Run Error:", err)
		return err
	}
	return nil
}
