// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"compress/gzip"
	"io"
	"net/netip"
	"os"
	"strings"

	"github.com/gaissmai/bintrie"
	"github.com/gaissmai/bintrie/codec"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// routeTrie maps prefixes to their next hop or label.
type routeTrie = bintrie.Trie[netip.Prefix, string]

func newRouteTrie(log *zap.Logger) *routeTrie {
	return bintrie.New[netip.Prefix, string](codec.Prefix{}, bintrie.WithLogger(log))
}

// loadRoutes reads a route file into trie, gzipped if the name ends in .gz.
//
// One route per line, the prefix optionally followed by a value:
//
//	# comment
//	10.0.0.0/8      9.9.9.9
//	2001:db8::/32
//
// A missing value defaults to the prefix itself, prefixes with host bits
// set are masked. Later lines replace earlier ones.
func loadRoutes(log *zap.Logger, trie *routeTrie, routesFile string) error {
	file, err := os.Open(routesFile)
	if err != nil {
		return errors.Wrap(err, "open routes")
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(routesFile, ".gz") {
		rgz, err := gzip.NewReader(file)
		if err != nil {
			return errors.Wrapf(err, "reading from %s", routesFile)
		}
		defer rgz.Close()
		r = rgz
	}

	var lineNo, replaced int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		cidr, err := netip.ParsePrefix(fields[0])
		if err != nil {
			return errors.Wrapf(err, "%s:%d", routesFile, lineNo)
		}
		if masked := cidr.Masked(); masked != cidr {
			log.Debug("prefix masked", zap.Stringer("prefix", cidr), zap.Stringer("masked", masked))
			cidr = masked
		}

		val := cidr.String()
		if len(fields) > 1 {
			val = strings.Join(fields[1:], " ")
		}

		if _, existed, err := trie.Put(cidr, val); err != nil {
			return errors.Wrapf(err, "%s:%d", routesFile, lineNo)
		} else if existed {
			replaced++
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading from %s", routesFile)
	}

	log.Info("routes loaded",
		zap.String("file", routesFile),
		zap.Int("lines", lineNo),
		zap.Int("routes", trie.Size()),
		zap.Int("replaced", replaced))
	return nil
}

// parseQuery accepts a prefix or an address, an address is a host route.
func parseQuery(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		pfx, err := netip.ParsePrefix(s)
		if err != nil {
			return pfx, errors.Wrap(err, "query")
		}
		return pfx.Masked(), nil
	}

	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, errors.Wrap(err, "query")
	}
	ip = ip.WithZone("")
	return netip.PrefixFrom(ip, ip.BitLen()), nil
}
