package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NetworkFlags covers the peer-connectivity knobs a future gossip layer
// would consume; block/transaction propagation itself is out of scope.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "port",
			Usage: "Peer listening port for a future gossip layer",
			Value: 5050,
		},
		cli.IntFlag{
			Name:  "maxpeers",
			Usage: "Maximum number of peer connections",
			Value: 50,
		},
		cli.StringFlag{
			Name:  "bootnodes",
			Usage: "Comma-separated peer addresses for bootstrap",
		},
	}
}
