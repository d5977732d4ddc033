// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package ledger

import (
	sdkmath "cosmossdk.io/math"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/bookkeeping"
	"github.com/algorand/holder-rewards/protocol"
)

// Reader resolves raw keys. Both the Ledger and a Cow on top of it are
// Readers.
type Reader interface {
	Lookup(key []byte) (value []byte, ok bool, err error)
}

// Writer accepts raw key writes. Only a Cow is a Writer; nothing reaches
// the store until the Cow is committed.
type Writer interface {
	Reader
	Write(key, value []byte)
}

type valueCodec[V any] struct {
	encode func(V) ([]byte, error)
	decode func([]byte) (V, error)
}

func recordCodec[V any]() valueCodec[V] {
	return valueCodec[V]{
		encode: func(v V) ([]byte, error) {
			return protocol.EncodeRecord(&v), nil
		},
		decode: func(b []byte) (v V, err error) {
			err = protocol.DecodeRecord(b, &v)
			return
		},
	}
}

var decCodec = valueCodec[sdkmath.LegacyDec]{
	encode: func(d sdkmath.LegacyDec) ([]byte, error) {
		return d.Marshal()
	},
	decode: func(b []byte) (d sdkmath.LegacyDec, err error) {
		err = d.Unmarshal(b)
		return
	},
}

// Item is a singleton record stored under a fixed key.
type Item[V any] struct {
	name  string
	key   []byte
	codec valueCodec[V]
}

// Get loads the record, returning ErrNoEntry if it was never saved.
func (it Item[V]) Get(r Reader) (v V, err error) {
	v, ok, err := it.Lookup(r)
	if err == nil && !ok {
		err = ErrNoEntry{Table: it.name, Key: it.key}
	}
	return
}

// Lookup loads the record and reports whether it exists.
func (it Item[V]) Lookup(r Reader) (v V, ok bool, err error) {
	raw, ok, err := r.Lookup(it.key)
	if err != nil || !ok {
		return v, false, err
	}
	v, err = it.codec.decode(raw)
	return v, err == nil, err
}

// Put saves the record.
func (it Item[V]) Put(w Writer, v V) error {
	raw, err := it.codec.encode(v)
	if err != nil {
		return err
	}
	w.Write(it.key, raw)
	return nil
}

// Map is a keyed table whose keys share one namespace tag.
type Map[K any, V any] struct {
	name  string
	tag   protocol.StoreTag
	keyFn func(K) []byte
	codec valueCodec[V]
}

func (m Map[K, V]) key(k K) []byte {
	body := m.keyFn(k)
	key := make([]byte, 0, 1+len(body))
	key = append(key, byte(m.tag))
	return append(key, body...)
}

// Get loads the value under k, returning ErrNoEntry if absent.
func (m Map[K, V]) Get(r Reader, k K) (v V, err error) {
	key := m.key(k)
	raw, ok, err := r.Lookup(key)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, ErrNoEntry{Table: m.name, Key: key}
	}
	return m.codec.decode(raw)
}

// GetOrDefault loads the value under k, or returns def if absent.
func (m Map[K, V]) GetOrDefault(r Reader, k K, def V) (V, error) {
	raw, ok, err := r.Lookup(m.key(k))
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return m.codec.decode(raw)
}

// Put stores v under k.
func (m Map[K, V]) Put(w Writer, k K, v V) error {
	raw, err := m.codec.encode(v)
	if err != nil {
		return err
	}
	w.Write(m.key(k), raw)
	return nil
}

// UserAsset keys a user's snapshot of one asset's global index.
type UserAsset struct {
	User  basics.Address
	Asset basics.AssetInfo
}

// userAssetKey length-prefixes the user so that (user, asset) pairs can
// never alias each other. Addresses are at most 90 bytes.
func userAssetKey(ua UserAsset) []byte {
	asset := ua.Asset.Key()
	key := make([]byte, 0, 1+len(ua.User)+len(asset))
	key = append(key, byte(len(ua.User)))
	key = append(key, ua.User...)
	return append(key, asset...)
}

func userPrefix(user basics.Address) []byte {
	prefix := []byte{byte(protocol.UserIndexTag), byte(len(user))}
	return append(prefix, user...)
}

// Tables of the actor state.
var (
	AdminLists = Item[bookkeeping.AdminList]{
		name:  "admin list",
		key:   protocol.AdminListTag.Prefix(),
		codec: recordCodec[bookkeeping.AdminList](),
	}
	Infos = Item[bookkeeping.Info]{
		name:  "info",
		key:   protocol.InfoTag.Prefix(),
		codec: recordCodec[bookkeeping.Info](),
	}
	ContractVersions = Item[bookkeeping.ContractVersion]{
		name:  "contract version",
		key:   protocol.ContractVersionTag.Prefix(),
		codec: recordCodec[bookkeeping.ContractVersion](),
	}
	GlobalIndexes = Map[basics.AssetInfo, sdkmath.LegacyDec]{
		name:  "global index",
		tag:   protocol.GlobalIndexTag,
		keyFn: basics.AssetInfo.Key,
		codec: decCodec,
	}
	UserIndexes = Map[UserAsset, sdkmath.LegacyDec]{
		name:  "user index",
		tag:   protocol.UserIndexTag,
		keyFn: userAssetKey,
		codec: decCodec,
	}
)
