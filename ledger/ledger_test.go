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
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/bookkeeping"
	"github.com/algorand/holder-rewards/logging"
	"github.com/algorand/holder-rewards/test/partitiontest"
	"github.com/algorand/holder-rewards/util/kvstore"
)

func openTestLedger(t *testing.T, impl string) (*Ledger, kvstore.KVStore) {
	store, err := kvstore.NewKVStore(impl, t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return Open(store, logging.TestingLog(t)), store
}

func TestItemGetPut(t *testing.T) {
	partitiontest.PartitionTest(t)

	l, _ := openTestLedger(t, "pebble")

	_, err := AdminLists.Get(l)
	require.ErrorAs(t, err, &ErrNoEntry{})

	_, ok, err := Infos.Lookup(l)
	require.NoError(t, err)
	require.False(t, ok)

	al := bookkeeping.AdminList{Admins: []basics.Address{"alice"}, Mutable: true}
	cow := l.NewCow()
	require.NoError(t, AdminLists.Put(cow, al))

	got, err := AdminLists.Get(cow)
	require.NoError(t, err)
	require.Equal(t, al, got)

	// not visible until committed
	_, err = AdminLists.Get(l)
	require.Error(t, err)

	require.NoError(t, cow.Commit())
	require.Zero(t, cow.Len())
	got, err = AdminLists.Get(l)
	require.NoError(t, err)
	require.Equal(t, al, got)
}

func TestCowDiscard(t *testing.T) {
	partitiontest.PartitionTest(t)

	l, _ := openTestLedger(t, "pebble")
	cow := l.NewCow()
	require.NoError(t, ContractVersions.Put(cow, bookkeeping.CurrentVersion))
	require.Equal(t, 1, cow.Len())
	cow.Discard()
	require.NoError(t, cow.Commit())

	_, ok, err := ContractVersions.Lookup(l)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGlobalIndex(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, impl := range []string{"pebble", "badger"} {
		t.Run(impl, func(t *testing.T) {
			l, _ := openTestLedger(t, impl)
			uusd := basics.NativeToken("uusd")

			_, err := GlobalIndex(l, uusd)
			require.ErrorIs(t, err, ErrIndexNotFound)

			cow := l.NewCow()
			idx := sdkmath.LegacyMustNewDecFromStr("33.333333333333333333")
			require.NoError(t, GlobalIndexes.Put(cow, uusd, idx))
			require.NoError(t, cow.Commit())

			got, err := GlobalIndex(l, uusd)
			require.NoError(t, err)
			require.True(t, idx.Equal(got))

			// the token with the same text is a different asset
			_, err = GlobalIndex(l, basics.Token("uusd"))
			require.ErrorIs(t, err, ErrIndexNotFound)
		})
	}
}

func TestUserIndexDefault(t *testing.T) {
	partitiontest.PartitionTest(t)

	l, _ := openTestLedger(t, "pebble")
	uusd := basics.NativeToken("uusd")

	idx, err := UserIndex(l, "alice", uusd)
	require.NoError(t, err)
	require.True(t, idx.IsZero())

	cow := l.NewCow()
	require.NoError(t, UserIndexes.Put(cow, UserAsset{User: "alice", Asset: uusd}, sdkmath.LegacyNewDec(5)))
	require.NoError(t, cow.Commit())

	idx, err = UserIndex(l, "alice", uusd)
	require.NoError(t, err)
	require.Equal(t, "5.000000000000000000", idx.String())

	_, err = UserIndexes.Get(l, UserAsset{User: "bob", Asset: uusd})
	require.ErrorAs(t, err, &ErrNoEntry{})
}

func TestUserIndexKeysDoNotAlias(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := userAssetKey(UserAsset{User: "abc", Asset: basics.NativeToken("def")})
	b := userAssetKey(UserAsset{User: "abcd", Asset: basics.NativeToken("ef")})
	require.NotEqual(t, a, b)
}

func TestLedgerUserIndexes(t *testing.T) {
	partitiontest.PartitionTest(t)

	l, _ := openTestLedger(t, "pebble")
	cow := l.NewCow()
	require.NoError(t, UserIndexes.Put(cow, UserAsset{User: "alice", Asset: basics.NativeToken("uusd")}, sdkmath.LegacyNewDec(1)))
	require.NoError(t, UserIndexes.Put(cow, UserAsset{User: "alice", Asset: basics.Token("bluna")}, sdkmath.LegacyNewDec(2)))
	require.NoError(t, UserIndexes.Put(cow, UserAsset{User: "alicebob", Asset: basics.NativeToken("uusd")}, sdkmath.LegacyNewDec(3)))
	require.NoError(t, GlobalIndexes.Put(cow, basics.NativeToken("uusd"), sdkmath.LegacyNewDec(4)))
	require.NoError(t, cow.Commit())

	idx, err := l.UserIndexes("alice")
	require.NoError(t, err)
	require.Len(t, idx, 2)
	require.Equal(t, "1.000000000000000000", idx["native:uusd"].String())
	require.Equal(t, "2.000000000000000000", idx["token:bluna"].String())

	idx, err = l.UserIndexes("carl")
	require.NoError(t, err)
	require.Empty(t, idx)
}
