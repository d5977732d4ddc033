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
	"bytes"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"golang.org/x/exp/slices"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/logging"
	"github.com/algorand/holder-rewards/util/kvstore"
)

// Ledger is the persisted state of one actor: the admin list, the tracked
// asset configuration and the global and per-user reward indexes.
type Ledger struct {
	store kvstore.KVStore
	log   logging.Logger
}

// Open wraps a store. The store stays owned by the caller.
func Open(store kvstore.KVStore, log logging.Logger) *Ledger {
	return &Ledger{store: store, log: logging.OrBase(log)}
}

// Lookup implements Reader against committed state.
func (l *Ledger) Lookup(key []byte) ([]byte, bool, error) {
	v, err := l.store.Get(key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// NewCow starts a copy-on-write overlay on top of committed state.
func (l *Ledger) NewCow() *Cow {
	return &Cow{ledger: l, mods: make(map[string][]byte)}
}

// UserIndexes returns every asset snapshot recorded for user, in key order.
func (l *Ledger) UserIndexes(user basics.Address) (map[string]sdkmath.LegacyDec, error) {
	prefix := userPrefix(user)
	it := l.store.NewIterator(prefix, kvstore.PrefixEnd(prefix))
	defer it.Close()

	out := make(map[string]sdkmath.LegacyDec)
	for ; it.Valid(); it.Next() {
		key := it.Key()
		if !bytes.HasPrefix(key, prefix) {
			break
		}
		raw, err := it.Value()
		if err != nil {
			return nil, err
		}
		dec, err := decCodec.decode(raw)
		if err != nil {
			return nil, fmt.Errorf("user index %x: %w", key, err)
		}
		out[assetKeyString(key[len(prefix):])] = dec
	}
	return out, nil
}

func assetKeyString(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	switch basics.AssetKind(key[0]) {
	case basics.NativeAsset:
		return basics.NativeToken(string(key[1:])).String()
	case basics.TokenAsset:
		return basics.Token(basics.Address(key[1:])).String()
	}
	return fmt.Sprintf("%x", key)
}

// GlobalIndex loads the global index of a tracked asset, failing with
// ErrIndexNotFound if the asset was never initialized.
func GlobalIndex(r Reader, ai basics.AssetInfo) (sdkmath.LegacyDec, error) {
	idx, err := GlobalIndexes.Get(r, ai)
	var noEntry ErrNoEntry
	if errors.As(err, &noEntry) {
		return sdkmath.LegacyDec{}, fmt.Errorf("%w: %s", ErrIndexNotFound, ai)
	}
	return idx, err
}

// UserIndex loads the user's snapshot of an asset's global index. A user
// that never settled the asset has a zero snapshot.
func UserIndex(r Reader, user basics.Address, ai basics.AssetInfo) (sdkmath.LegacyDec, error) {
	return UserIndexes.GetOrDefault(r, UserAsset{User: user, Asset: ai}, sdkmath.LegacyZeroDec())
}

// Cow buffers writes over a Ledger. Reads see buffered writes first.
// Nothing is persisted until Commit, which applies all writes in one batch.
type Cow struct {
	ledger *Ledger
	mods   map[string][]byte
}

// Lookup implements Reader.
func (cb *Cow) Lookup(key []byte) ([]byte, bool, error) {
	if v, ok := cb.mods[string(key)]; ok {
		return v, true, nil
	}
	return cb.ledger.Lookup(key)
}

// Write implements Writer.
func (cb *Cow) Write(key, value []byte) {
	cb.mods[string(key)] = value
}

// Len returns the number of buffered writes.
func (cb *Cow) Len() int {
	return len(cb.mods)
}

// Commit writes every buffered modification to the store atomically and
// resets the overlay.
func (cb *Cow) Commit() error {
	if len(cb.mods) == 0 {
		return nil
	}
	keys := make([]string, 0, len(cb.mods))
	for k := range cb.mods {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	batch := cb.ledger.store.NewBatch()
	for _, k := range keys {
		if err := batch.Set([]byte(k), cb.mods[k]); err != nil {
			batch.Cancel()
			return err
		}
	}
	if err := batch.Commit(); err != nil {
		return err
	}
	cb.ledger.log.Debugf("ledger: committed %d writes", len(keys))
	cb.mods = make(map[string][]byte)
	return nil
}

// Discard drops every buffered modification.
func (cb *Cow) Discard() {
	cb.mods = make(map[string][]byte)
}
