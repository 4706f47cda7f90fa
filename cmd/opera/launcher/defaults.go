package launcher

// Defaults bundles the baseline configuration values the launcher will use
// before flags/config files override them. Fill these out as the project evolves.

type Defaults struct {
	Node      NodeDefaults
	Network   NetworkDefaults
	Validator ValidatorDefaults
	Logging   LoggingDefaults
}

// NodeDefaults captures top-level node settings (datadir, identity, etc).

type NodeDefaults struct {
	DataDir    string //	Filesystem root where the node stores everything (chaindata, keystore, logs). Changing it lets you run multiple nodes or keep test data isolated.
	Name       string //	Human-readable node identity surfaced in logs and config dumps; helps operators distinguish instances.
	MaxPeers   int    //  Upper bound on concurrent peer connections a future gossip layer would honour.
	ListenAddr string //  IP/interface a future gossip layer would bind to (e.g., 0.0.0.0 for all interfaces or 127.0.0.1 for local-only).
	ListenPort int    //  Port a future gossip layer would use for block/transaction propagation.
}

// NetworkDefaults holds chain identity and fakenet sizing.
type NetworkDefaults struct {
	NetworkID   uint64   //  Unique identifier for the network (e.g., mainnet vs testnet vs fakenet). Embedded in opera.Settings so nodes only sync with peers on the same network.
	ChainName   string   //  Human-readable name for the network preset (e.g., "mainnet", "testnet", "fakenet"), surfaced in logs and config dumps.
	Bootnodes   []string //  Peer addresses a future gossip layer would dial during startup to discover peers.
	FakeNetSize int      //  Number of validator slots in the deterministic fakenet helper; drives how many validator key pairs and genesis balances get generated.
}

// ValidatorDefaults stores defaults for the local node's own forging identity.
type ValidatorDefaults struct {
	Enabled        bool     //	Whether this node should attempt to forge blocks (call TryGenerateNextBlock) by default.
	ID             uint32   //	Validator index in the genesis/fakenet configuration; tells the node which validator slot it forges as.
	PubKeyHex      string   //	Hex-encoded validator public key expected by the network; used to match the local keystore key.
	SignerPassword string   //	Password to unlock the validator key inline (not recommended; better use a file).
	PasswordFile   string   //	Path to a file containing the validator's password.
	UnlockAccounts []string //	Account addresses to unlock automatically when the node starts.
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs (helpful on terminals, best disabled when piping to files).
}

// DefaultConfig returns a fully populated Defaults instance. Update values as
// the real defaults solidify.

func DefaultConfig() Defaults {
	return Defaults{
		Node: NodeDefaults{
			DataDir:    "~/.opera",
			Name:       "go-opera",
			MaxPeers:   50,
			ListenAddr: "0.0.0.0",
			ListenPort: 5050,
		},
		Network: NetworkDefaults{
			NetworkID:   4003,
			ChainName:   "fakenet",
			Bootnodes:   []string{},
			FakeNetSize: 0,
		},
		Validator: ValidatorDefaults{
			Enabled: false,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     true,
		},
	}
}
