// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
	"github.com/bitmark-inc/notaryrelay/relay"
	"github.com/bitmark-inc/notaryrelay/storage"
)

type metadata struct {
	config   *Configuration
	contract *relay.Contract
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "relay-cli"
	app.Usage = "operate a notary relay contract on a local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " caller identity `NAME`",
		},
		cli.StringSliceFlag{
			Name:  "define, d",
			Usage: " set configuration variable `NAME=VALUE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "init",
			Usage:     "create the channel pair from the configuration",
			ArgsUsage: "\n   (* = required)",
			Action:    runInit,
		},
		{
			Name:      "credit",
			Usage:     "add opening funds to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `NAME` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*amount to credit `COUNT`",
				},
			},
			Action: runCredit,
		},
		{
			Name:      "lock",
			Usage:     "lock funds from the identity into the relay contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*source asset account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*recipient on the peer ledger `NAME`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*amount to lock `COUNT`",
				},
			},
			Action: runLock,
		},
		{
			Name:      "send",
			Usage:     "create an outbound proposal from a lock",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from-asset, f",
					Value: "",
					Usage: "*source asset account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to-asset, a",
					Value: "",
					Usage: "*destination asset account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*recipient on the peer ledger `NAME`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*amount locked `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "reference, r",
					Value: 0,
					Usage: "*lock sequence number `SEQ`",
				},
			},
			Action: runSend,
		},
		{
			Name:      "vote-outbound",
			Usage:     "report the source side status of an outbound proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "seq, s",
					Value: 0,
					Usage: "*proposal sequence `SEQ`",
				},
				cli.StringFlag{
					Name:  "status",
					Value: "",
					Usage: "*reported status `STATUS` [success|fail]",
				},
			},
			Action: runVoteOutbound,
		},
		{
			Name:      "vote-inbound",
			Usage:     "submit a copy of a transfer payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*payload `JSON` as printed by proposal",
				},
			},
			Action: runVoteInbound,
		},
		{
			Name:      "channel",
			Usage:     "show the channel records",
			ArgsUsage: "\n   (* = required)",
			Action:    runChannel,
		},
		{
			Name:      "proposal",
			Usage:     "show one proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "direction, d",
					Value: "outbound",
					Usage: " channel `DIRECTION` [outbound|inbound]",
				},
				cli.Uint64Flag{
					Name:  "seq, s",
					Value: 0,
					Usage: "*proposal sequence `SEQ`",
				},
			},
			Action: runProposal,
		},
		{
			Name:      "balance",
			Usage:     "show an account balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `NAME` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "version",
			Usage:  "display relay-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fmt.Errorf("missing --config option")
		}

		variables := make(map[string]string)
		for _, d := range c.GlobalStringSlice("define") {
			s := strings.SplitN(d, "=", 2)
			if 2 != len(s) || "" == s[0] {
				return fmt.Errorf("define: %q is not NAME=VALUE", d)
			}
			variables[s[0]] = s[1]
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file, variables)
		if nil != err {
			return err
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("command: %q  contract: %s", command, config.Contract)

		if err := storage.Initialise(config.Database.Name, storage.ReadWrite); nil != err {
			return err
		}
		if err := ledger.Initialise(); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:   config,
			contract: relay.New(),
			identity: c.GlobalString("identity"),
			verbose:  verbose,
			e:        e,
			w:        w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); !ok {
			return nil
		}
		_ = ledger.Finalise()
		storage.Finalise()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
