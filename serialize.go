// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"bytes"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// The persisted form is flat: the number of entries, followed by the
// key/value pairs in ascending order. The node structure is never
// written, restoring reinserts every pair and results in a properly
// pruned trie, regardless of the trie that produced the snapshot.

// EncodeTo writes a msgpack snapshot of t to w.
func (t *Trie[K, V]) EncodeTo(w io.Writer) error {
	enc := msgpack.NewEncoder(w)

	if err := enc.EncodeInt(int64(t.size)); err != nil {
		return errors.Wrap(err, "encode size")
	}

	for n := t.firstNode(); n != nil; n = successor(n, nil) {
		key := t.resolveKey(n)
		if err := enc.Encode(key); err != nil {
			return errors.Wrapf(err, "encode key %v", key)
		}
		if err := enc.Encode(n.value); err != nil {
			return errors.Wrapf(err, "encode value for key %v", key)
		}
	}

	return nil
}

// DecodeFrom replaces the content of t with the msgpack snapshot read from r.
// On error t is left unchanged.
func (t *Trie[K, V]) DecodeFrom(r io.Reader) error {
	if err := t.mustHaveCodec(); err != nil {
		return err
	}

	dec := msgpack.NewDecoder(r)

	size, err := dec.DecodeInt()
	if err != nil {
		return errors.Wrap(err, "decode size")
	}
	if size < 0 {
		return errors.Errorf("decode size: negative size %d", size)
	}

	fresh := t.emptyCopy()
	for i := range size {
		var key K
		var val V

		if err := dec.Decode(&key); err != nil {
			return errors.Wrapf(err, "decode key #%d", i)
		}
		if err := dec.Decode(&val); err != nil {
			return errors.Wrapf(err, "decode value #%d", i)
		}
		if _, _, err := fresh.Put(key, val); err != nil {
			return errors.Wrapf(err, "restore key #%d", i)
		}
	}

	return t.adopt(fresh, size)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface,
// just a wrapper for [Trie.EncodeTo].
func (t *Trie[K, V]) MarshalBinary() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.EncodeTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface,
// just a wrapper for [Trie.DecodeFrom]. The trie must be created with [New].
func (t *Trie[K, V]) UnmarshalBinary(data []byte) error {
	return t.DecodeFrom(bytes.NewReader(data))
}

// jsonEntry is a single key/value pair in the JSON snapshot.
type jsonEntry[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// jsonSnapshot is the JSON form of the flat snapshot.
type jsonSnapshot[K comparable, V any] struct {
	Size    int               `json:"size"`
	Entries []jsonEntry[K, V] `json:"entries"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON implements the [encoding/json.Marshaler] interface.
// The entries are written as a list in ascending order, the order matters.
func (t *Trie[K, V]) MarshalJSON() ([]byte, error) {
	snap := jsonSnapshot[K, V]{
		Size:    t.size,
		Entries: make([]jsonEntry[K, V], 0, t.size),
	}

	for n := t.firstNode(); n != nil; n = successor(n, nil) {
		snap.Entries = append(snap.Entries, jsonEntry[K, V]{Key: t.resolveKey(n), Value: n.value})
	}

	buf, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "marshal trie")
	}
	return buf, nil
}

// UnmarshalJSON implements the [encoding/json.Unmarshaler] interface.
// The trie must be created with [New], on error it is left unchanged.
func (t *Trie[K, V]) UnmarshalJSON(data []byte) error {
	if err := t.mustHaveCodec(); err != nil {
		return err
	}

	var snap jsonSnapshot[K, V]
	if err := json.Unmarshal(data, &snap); err != nil {
		return errors.Wrap(err, "unmarshal trie")
	}

	fresh := t.emptyCopy()
	for i, e := range snap.Entries {
		if _, _, err := fresh.Put(e.Key, e.Value); err != nil {
			return errors.Wrapf(err, "restore key #%d", i)
		}
	}

	return t.adopt(fresh, snap.Size)
}

// mustHaveCodec, the zero Trie has no codec.
func (t *Trie[K, V]) mustHaveCodec() error {
	if t.codec == nil {
		return errors.Wrap(ErrInvalidArgument, "trie without codec, use New")
	}
	return nil
}

// emptyCopy returns an empty trie with the codec and logger of t.
func (t *Trie[K, V]) emptyCopy() *Trie[K, V] {
	return New[K, V](t.codec, WithLogger(t.log))
}

// adopt takes over the nodes of the restored trie fresh.
func (t *Trie[K, V]) adopt(fresh *Trie[K, V], wantSize int) error {
	if fresh.size != wantSize {
		return errors.Errorf("snapshot announces %d entries, restored %d", wantSize, fresh.size)
	}

	t.root = fresh.root
	t.size = fresh.size
	t.revision++

	t.log.Debug("trie restored", zap.Int("size", t.size), zap.Uint64("revision", t.revision))
	return nil
}
