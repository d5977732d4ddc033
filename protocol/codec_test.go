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

package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/holder-rewards/test/partitiontest"
)

type testRecord struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Name    string   `codec:"n"`
	Members []string `codec:"m"`
	Flag    bool     `codec:"f"`
}

type otherRecord struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Name string `codec:"n"`
}

func TestEncodeDecodeRecord(t *testing.T) {
	partitiontest.PartitionTest(t)

	in := testRecord{Name: "admins", Members: []string{"alice", "bob"}, Flag: true}
	var out testRecord
	require.NoError(t, DecodeRecord(EncodeRecord(&in), &out))
	require.Equal(t, in, out)
}

func TestEncodeRecordCanonical(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := EncodeRecord(&testRecord{Name: "x", Flag: true})
	b := EncodeRecord(&testRecord{Flag: true, Name: "x"})
	require.Equal(t, a, b)
}

func TestDecodeRecordUnknownField(t *testing.T) {
	partitiontest.PartitionTest(t)

	enc := EncodeRecord(&testRecord{Name: "x", Members: []string{"y"}})
	var out otherRecord
	require.ErrorIs(t, DecodeRecord(enc, &out), ErrInvalidObject)
}

func TestDecodeRecordGarbage(t *testing.T) {
	partitiontest.PartitionTest(t)

	var out testRecord
	require.ErrorIs(t, DecodeRecord([]byte{0xc1}, &out), ErrInvalidObject)
	require.ErrorIs(t, DecodeRecord(nil, &out), ErrInvalidObject)
}

func TestStoreTagsDistinct(t *testing.T) {
	partitiontest.PartitionTest(t)

	tags := []StoreTag{AdminListTag, InfoTag, GlobalIndexTag, UserIndexTag, ContractVersionTag, HostBalanceTag}
	seen := make(map[StoreTag]bool)
	for _, tag := range tags {
		require.False(t, seen[tag])
		seen[tag] = true
		require.Equal(t, []byte{byte(tag)}, tag.Prefix())
	}
}
