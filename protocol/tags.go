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

// StoreTag is a one-byte namespace prefixed to every key written to the
// actor's KV store, so that distinct maps never collide.
type StoreTag byte

// Store namespaces. Values are persisted: never renumber.
const (
	AdminListTag       StoreTag = 0x01
	InfoTag            StoreTag = 0x02
	GlobalIndexTag     StoreTag = 0x03
	UserIndexTag       StoreTag = 0x04
	ContractVersionTag StoreTag = 0x05

	HostBalanceTag StoreTag = 0x80
)

// Prefix returns the tag as a key prefix.
func (t StoreTag) Prefix() []byte {
	return []byte{byte(t)}
}
