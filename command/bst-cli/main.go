// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
)

type metadata struct {
	tree    *bst.Tree
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bst-cli"
	app.Usage = "binary search tree operations"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " comma separated initial `KEYS`",
		},
		cli.IntFlag{
			Name:  "random, r",
			Value: 0,
			Usage: " number of random initial keys `COUNT`",
		},
		cli.Int64Flag{
			Name:  "maximum, m",
			Value: 100,
			Usage: " random keys are less than `MAXIMUM`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "print",
			Usage:  "draw the tree",
			Action: runPrint,
		},
		{
			Name:      "find",
			Usage:     "show the node holding a key",
			ArgsUsage: "KEY",
			Action:    runFind,
		},
		{
			Name:      "height",
			Usage:     "edges on the longest path from a key down to a leaf",
			ArgsUsage: "KEY",
			Action:    runHeight,
		},
		{
			Name:      "depth",
			Usage:     "edges from the root to a key",
			ArgsUsage: "KEY",
			Action:    runDepth,
		},
		{
			Name:      "insert",
			Usage:     "insert keys, without rebalancing",
			ArgsUsage: "KEY...",
			Action:    runInsert,
		},
		{
			Name:      "delete",
			Usage:     "delete keys",
			ArgsUsage: "KEY...",
			Action:    runDelete,
		},
		{
			Name:   "balanced",
			Usage:  "check if the tree is balanced",
			Action: runBalanced,
		},
		{
			Name:   "rebalance",
			Usage:  "rebuild the tree with minimum height",
			Action: runRebalance,
		},
		{
			Name:  "traverse",
			Usage: "list keys in a traversal order",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [pre|in|post|level|level-recursive]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:  "version",
			Usage: "display bst-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		keys, err := initialKeys(c.GlobalString("keys"), c.GlobalInt("random"), c.GlobalInt64("maximum"))
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "keys: %v\n", keys)
		}

		c.App.Metadata["config"] = &metadata{
			tree:    bst.New(keys),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
