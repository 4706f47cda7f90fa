package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NodeFlags holds knobs specific to the local node instance.

func NodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "identity",
			Usage: "Custom node name to advertise in logs and config dumps",
		},
		cli.IntFlag{
			Name:  "cache",
			Usage: "Megabytes of memory allocated to internal caching",
			Value: 1024,
		},
	}
}
