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

package bookkeeping

import (
	"golang.org/x/exp/slices"

	"github.com/algorand/holder-rewards/data/basics"
)

// AdminList is the set of administrators of the actor together with the
// flag that allows changing it. Once Mutable is false it stays false.
type AdminList struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Admins  []basics.Address `codec:"admins"`
	Mutable bool             `codec:"mutable"`
}

// MakeAdminList validates every admin identity and builds an AdminList.
// Identities must already be normalized.
func MakeAdminList(admins []string, mutable bool) (AdminList, error) {
	validated, err := basics.ValidateAddresses(admins)
	if err != nil {
		return AdminList{}, err
	}
	return AdminList{Admins: validated, Mutable: mutable}, nil
}

// IsAdmin returns true if addr is in the admin set.
func (al AdminList) IsAdmin(addr basics.Address) bool {
	return slices.Contains(al.Admins, addr)
}

// CanModify returns true if addr may freeze the list or replace its members.
func (al AdminList) CanModify(addr basics.Address) bool {
	return al.Mutable && al.IsAdmin(addr)
}

// Canonical returns a copy with admins sorted and deduplicated, so two
// lists with the same meaning compare equal.
func (al AdminList) Canonical() AdminList {
	admins := slices.Clone(al.Admins)
	slices.Sort(admins)
	admins = slices.Compact(admins)
	return AdminList{Admins: admins, Mutable: al.Mutable}
}

// Strings returns the admins as plain strings.
func (al AdminList) Strings() []string {
	out := make([]string, len(al.Admins))
	for i, a := range al.Admins {
		out[i] = string(a)
	}
	return out
}
