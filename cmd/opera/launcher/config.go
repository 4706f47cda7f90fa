// This file maps CLI context to config struct; placeholders for node/p2p/app configs

// NOTE: This file is a placeholder and most of the data may change as the project evolves

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// Config aggregates every subsystem’s configuration the launcher needs.
type Config struct {
	Node          NodeConfig
	Opera         OperaConfig
	Emitter       EmitterConfig
	OperaStore    StoreConfig
	Lachesis      LachesisConfig
	LachesisStore LachesisStoreConfig
	VectorClock   VectorClockConfig
	DBs           DBsConfig
	Consensus     ConsensusConfig
	Preset        string
	FakeNetSize   int
}

// ConsensusConfig mirrors opera.Settings plus the pool-capacity knobs the
// consensus core reads, so the launcher can build an opera.Settings value
// and a pool.Pool from CLI-provided overrides without those packages
// depending on package launcher.
type ConsensusConfig struct {
	BlockDelay       time.Duration
	BalanceDepthBump uint64
	MinBalanceAfter  int64
	SortedTxsAfter   int64
	MaxTxPerBlock    int
	PrunePastMaxAge  time.Duration
}

// Settings converts cfg into an opera.Settings value, ready to hand to
// consensus.New.
func (cfg ConsensusConfig) Settings(name string, networkID uint64) opera.Settings {
	return opera.Settings{
		Name:                                    name,
		NetworkID:                               networkID,
		AverageBlockDelay:                       cfg.BlockDelay,
		GeneratingBalanceDepthBumpHeight:        cfg.BalanceDepthBump,
		MinimalGeneratingBalanceAfterTimestamp:  secondsToTimestamp(cfg.MinBalanceAfter),
		RequireSortedTransactionsAfter:          secondsToTimestamp(cfg.SortedTxsAfter),
		MaxTxPerBlock:                           cfg.MaxTxPerBlock,
		PoolPruneMaxAgePast:                     cfg.PrunePastMaxAge,
	}
}

// NodeConfig holds the local node's data directory, identity, P2P and
// logging settings.

type NodeConfig struct {
	DataDir string
	Name    string
	P2P     P2PConfig
	Logging LoggingConfig
}

type P2PConfig struct {
	ListenAddr string
	ListenPort int
	MaxPeers   int
	Bootnodes  []string
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

type OperaConfig struct {
	NetworkName string
	NetworkID   uint64
	FakeNet     bool
}

type EmitterConfig struct {
	Enabled        bool
	ValidatorID    uint32
	ValidatorKey   string // hex public key for now
	Password       string // TODO: replace with secure keystore handling
	PasswordFile   string
	UnlockAccounts []string
}

type StoreConfig struct {
	Path    string
	CacheMB int
}

type LachesisConfig struct {
	MaxEpochBlocks uint64
	MaxEpochTime   string // use duration strings until the engine is ready
}

type LachesisStoreConfig struct {
	CacheMB int
}

type VectorClockConfig struct {
	CacheSize uint32
}

type DBsConfig struct {
	RootDir      string
	RuntimeCache int
	Routing      map[string]string
}

func secondsToTimestamp(sec int64) inter.Timestamp {
	return inter.FromUnixSeconds(sec)
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

//	Default config function creates a default config object using the DefaultConfig function from defaults.go file in launcher package
//	This keeps this main config file clean and in sync with the defaults.go file

func defaultConfig() Config {
	home := GuessHomeDir()
	return Config{
		Node: NodeConfig{
			DataDir: filepath.Join(home, ".opera"),
			Name:    DefaultConfig().Node.Name,
			P2P: P2PConfig{
				ListenAddr: DefaultConfig().Node.ListenAddr,
				ListenPort: DefaultConfig().Node.ListenPort,
				MaxPeers:   DefaultConfig().Node.MaxPeers,
				Bootnodes:  DefaultConfig().Network.Bootnodes,
			},
			Logging: LoggingConfig{
				Verbosity: DefaultConfig().Logging.Verbosity,
				Format:    DefaultConfig().Logging.Format,
				Color:     DefaultConfig().Logging.Color,
			},
		},
		Opera: OperaConfig{
			NetworkName: DefaultConfig().Network.ChainName,
			NetworkID:   DefaultConfig().Network.NetworkID,
			FakeNet:     DefaultConfig().Network.FakeNetSize > 0,
		},
		Emitter: EmitterConfig{
			Enabled:        DefaultConfig().Validator.Enabled,
			ValidatorID:    DefaultConfig().Validator.ID,
			ValidatorKey:   DefaultConfig().Validator.PubKeyHex,
			Password:       DefaultConfig().Validator.SignerPassword,
			PasswordFile:   DefaultConfig().Validator.PasswordFile,
			UnlockAccounts: DefaultConfig().Validator.UnlockAccounts,
		},
		OperaStore:    StoreConfig{Path: "chaindata", CacheMB: 1024},
		Lachesis:      LachesisConfig{MaxEpochBlocks: 1000, MaxEpochTime: "24h"},
		LachesisStore: LachesisStoreConfig{CacheMB: 512},
		VectorClock:   VectorClockConfig{CacheSize: 64 * 1024},
		DBs:           DBsConfig{RootDir: "databases", RuntimeCache: 1024, Routing: map[string]string{}},
		Consensus: ConsensusConfig{
			BlockDelay:       60 * time.Second,
			BalanceDepthBump: 810000,
			MaxTxPerBlock:    opera.MaxTxPerBlock,
			PrunePastMaxAge:  opera.MaxTxAgeInPoolPast,
		},
		Preset: "default",
	}
}

// MakeAllConfigs mirrors the launcher’s current behaviour: merge defaults,
// config-file values, and CLI overrides into a single config struct.

func MakeAllConfigs(ctx *cli.Context) Config {
	cfg := defaultConfig()

	if file := ctx.String("config"); file != "" {
		if err := loadConfigFile(file, &cfg); err != nil {
			// In this placeholder we simply panic; in the real launcher return the error.
			panic(fmt.Errorf("failed to load config file %s: %w", file, err))
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := ensureDir(cfg.Node.DataDir); err != nil {
		panic(err)
	}
	return cfg
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	// TODO: when ready, decode TOML into cfg using naoinna/toml or encoding/json.
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("datadir") {
		cfg.Node.DataDir = resolvePath(ctx.String("datadir"))
	}
	if ctx.IsSet("identity") {
		cfg.Node.Name = ctx.String("identity")
	}

	if ctx.IsSet("port") {
		cfg.Node.P2P.ListenPort = ctx.Int("port")
	}
	if ctx.IsSet("maxpeers") {
		cfg.Node.P2P.MaxPeers = ctx.Int("maxpeers")
	}
	if ctx.IsSet("bootnodes") {
		cfg.Node.P2P.Bootnodes = splitCSV(ctx.String("bootnodes"))
	}

	if ctx.IsSet("log.format") {
		cfg.Node.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Node.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Node.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("log.sentry-dsn") {
		cfg.Node.Logging.SentryDSN = ctx.String("log.sentry-dsn")
	}

	if ctx.IsSet("genesis") {
		// cfg.Genesis.Path = ctx.String("genesis")
	}
	if ctx.IsSet("fakenet") {
		cfg.Opera.FakeNet = true
		cfg.Opera.NetworkName = "fakenet"
		cfg.Opera.NetworkID = opera.FakeNetworkID
		cfg.FakeNetSize = ctx.Int("fakenet")
	}
	if ctx.IsSet("cache") {
		cfg.OperaStore.CacheMB = ctx.Int("cache")
		cfg.DBs.RuntimeCache = ctx.Int("cache")
	}
	if ctx.IsSet("gcmode") {
		cfg.OperaStore.Path = ctx.String("gcmode") // placeholder; replace with real GC mode handling
	}

	if ctx.IsSet("consensus.blockdelay") {
		cfg.Consensus.BlockDelay = time.Duration(ctx.Int("consensus.blockdelay")) * time.Second
	}
	if ctx.IsSet("consensus.balancedepthbump") {
		cfg.Consensus.BalanceDepthBump = ctx.Uint64("consensus.balancedepthbump")
	}
	if ctx.IsSet("consensus.minbalanceafter") {
		cfg.Consensus.MinBalanceAfter = ctx.Int64("consensus.minbalanceafter")
	}
	if ctx.IsSet("consensus.sortedtxsafter") {
		cfg.Consensus.SortedTxsAfter = ctx.Int64("consensus.sortedtxsafter")
	}
	if ctx.IsSet("consensus.maxtxperblock") {
		cfg.Consensus.MaxTxPerBlock = ctx.Int("consensus.maxtxperblock")
	}
	if ctx.IsSet("consensus.prunepast") {
		cfg.Consensus.PrunePastMaxAge = ctx.Duration("consensus.prunepast")
	}
	if ctx.IsSet("preset") {
		cfg.Preset = ctx.String("preset")
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create datadir %s: %w", dir, err)
	}
	return nil
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}

func GuessProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd // hit filesystem root without finding go.mod
		}
		dir = parent
	}
}
