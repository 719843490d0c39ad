// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// saveSnapshot writes trie to path in the given format.
func saveSnapshot(log *zap.Logger, trie *routeTrie, path, format string) error {
	var data []byte
	var err error

	switch format {
	case formatJSON:
		data, err = trie.MarshalJSON()
	default:
		data, err = trie.MarshalBinary()
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write snapshot")
	}

	log.Info("snapshot saved",
		zap.String("file", path),
		zap.String("format", format),
		zap.Int("routes", trie.Size()),
		zap.Int("bytes", len(data)))
	return nil
}

// loadSnapshot reads a snapshot from path into trie.
func loadSnapshot(log *zap.Logger, trie *routeTrie, path, format string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open snapshot")
	}
	defer file.Close()

	r := bufio.NewReader(file)
	switch format {
	case formatJSON:
		var data []byte
		if data, err = io.ReadAll(r); err == nil {
			err = trie.UnmarshalJSON(data)
		}
	default:
		err = trie.DecodeFrom(r)
	}
	if err != nil {
		return errors.Wrapf(err, "snapshot %s", path)
	}

	log.Info("snapshot loaded",
		zap.String("file", path),
		zap.String("format", format),
		zap.Int("routes", trie.Size()))
	return nil
}
