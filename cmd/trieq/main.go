// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command trieq loads route files into a prefix trie, persists snapshots
// and answers longest-prefix-match, subnet and supernet queries.
//
//	trieq --routes routes.txt.gz --snapshot routes.msgpack load
//	trieq --snapshot routes.msgpack lookup 10.1.2.3 2001:db8::1
//	trieq --snapshot routes.msgpack subnets 10.0.0.0/8
//	trieq --snapshot routes.msgpack supernets 10.1.0.0/16
//	trieq --routes routes.txt dump
package main

import (
	"fmt"
	"io"
	"net/netip"
	"os"

	"github.com/gaissmai/bintrie"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "trieq:", err)
		os.Exit(1)
	}
}

// newApp returns the cli application, writing results to w.
func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "trieq"
	app.Usage = "query IP routes with a binary prefix trie"
	app.Writer = w

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
			EnvVars: []string{"TRIEQ_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "routes",
			Aliases: []string{"r"},
			Usage:   "route file, one prefix and an optional value per line, may be gzipped",
			EnvVars: []string{"TRIEQ_ROUTES"},
		},
		&cli.StringFlag{
			Name:    "snapshot",
			Aliases: []string{"s"},
			Usage:   "snapshot file, written by load, read by the queries if no routes are given",
			EnvVars: []string{"TRIEQ_SNAPSHOT"},
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "snapshot format, msgpack or json",
			Value:   formatMsgpack,
			EnvVars: []string{"TRIEQ_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{"TRIEQ_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "shortcut for --log-level debug",
		},
	}

	app.Commands = []*cli.Command{
		loadCmd,
		lookupCmd,
		subnetsCmd,
		supernetsCmd,
		dumpCmd,
		statsCmd,
	}

	return app
}

// env is the per invocation state of a command.
type env struct {
	cfg  *Config
	log  *zap.Logger
	trie *routeTrie
}

// setup reads the config, builds the logger and fills the trie,
// from the routes file if given, from the snapshot otherwise.
func setup(cctx *cli.Context) (*env, error) {
	cfg, err := configFromContext(cctx)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.LogLevel, cctx.Bool("debug"))
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: log, trie: newRouteTrie(log)}

	switch {
	case cfg.Routes != "":
		err = loadRoutes(log, e.trie, cfg.Routes)
	case cfg.Snapshot != "":
		err = loadSnapshot(log, e.trie, cfg.Snapshot, cfg.Format)
	default:
		err = errors.New("neither routes nor snapshot given")
	}
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	return e, nil
}

// withEnv adapts a command action to the env.
func withEnv(action func(*cli.Context, *env) error) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		e, err := setup(cctx)
		if err != nil {
			return err
		}
		defer func() { _ = e.log.Sync() }()

		return action(cctx, e)
	}
}

var loadCmd = &cli.Command{
	Name:  "load",
	Usage: "load the routes and write the snapshot",
	Action: withEnv(func(cctx *cli.Context, e *env) error {
		if e.cfg.Routes == "" || e.cfg.Snapshot == "" {
			return errors.New("load needs routes and snapshot")
		}
		if err := saveSnapshot(e.log, e.trie, e.cfg.Snapshot, e.cfg.Format); err != nil {
			return err
		}
		fmt.Fprintf(cctx.App.Writer, "%d routes\n", e.trie.Size())
		return nil
	}),
}

var lookupCmd = &cli.Command{
	Name:      "lookup",
	Usage:     "longest-prefix-match for addresses or prefixes",
	ArgsUsage: "<ip|prefix>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "exclusive",
			Usage: "don't match the query prefix itself",
		},
	},
	Action: withEnv(func(cctx *cli.Context, e *env) error {
		if cctx.NArg() == 0 {
			return errors.New("need to provide an address or prefix as an argument")
		}

		for _, arg := range cctx.Args().Slice() {
			query, err := parseQuery(arg)
			if err != nil {
				return err
			}

			lpm, val, ok := e.trie.LongestPrefixOf(query, !cctx.Bool("exclusive"))
			if !ok {
				fmt.Fprintf(cctx.App.Writer, "%s: no route\n", arg)
				continue
			}
			fmt.Fprintf(cctx.App.Writer, "%s: %s %s\n", arg, lpm, val)
		}
		return nil
	}),
}

var subnetsCmd = &cli.Command{
	Name:      "subnets",
	Usage:     "all routes covered by the prefix, the prefix included",
	ArgsUsage: "<prefix>",
	Action: withEnv(func(cctx *cli.Context, e *env) error {
		query, err := parseQuery(cctx.Args().First())
		if err != nil {
			return err
		}

		pm, err := e.trie.PrefixedByMap(query, true)
		if err != nil {
			return err
		}
		return printRoutes(cctx.App.Writer, pm)
	}),
}

var supernetsCmd = &cli.Command{
	Name:      "supernets",
	Usage:     "all routes covering the prefix, the prefix included",
	ArgsUsage: "<prefix>",
	Action: withEnv(func(cctx *cli.Context, e *env) error {
		query, err := parseQuery(cctx.Args().First())
		if err != nil {
			return err
		}

		pm, err := e.trie.PrefixOfMap(query, true)
		if err != nil {
			return err
		}
		return printRoutes(cctx.App.Writer, pm)
	}),
}

var dumpCmd = &cli.Command{
	Name:  "dump",
	Usage: "print the routes as tree",
	Action: withEnv(func(cctx *cli.Context, e *env) error {
		return e.trie.Fprint(cctx.App.Writer)
	}),
}

var statsCmd = &cli.Command{
	Name:  "stats",
	Usage: "print the number of routes and the content hash",
	Action: withEnv(func(cctx *cli.Context, e *env) error {
		fmt.Fprintf(cctx.App.Writer, "routes: %d\nhash:   %016x\n", e.trie.Size(), e.trie.Hash())
		return nil
	}),
}

// printRoutes writes the routes of pm, one per line.
func printRoutes(w io.Writer, pm *bintrie.PrefixMap[netip.Prefix, string]) error {
	for pfx, val := range pm.All() {
		if _, err := fmt.Fprintf(w, "%s %s\n", pfx, val); err != nil {
			return err
		}
	}
	return nil
}
