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

package basics

import (
	"fmt"
	"strings"
)

const (
	minAddressLength = 3
	maxAddressLength = 90
)

// Address is the normalized textual identity of an account or contract.
// Only lowercase letters and digits are allowed.
type Address string

// ValidateAddress checks that s is a well-formed address already in its
// normalized (lowercase) form and returns it as an Address.
func ValidateAddress(s string) (Address, error) {
	if len(s) < minAddressLength || len(s) > maxAddressLength {
		return "", fmt.Errorf("%w: %q has length %d, want %d..%d", ErrInvalidAddress, s, len(s), minAddressLength, maxAddressLength)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
			return "", fmt.Errorf("%w: %q is not normalized", ErrInvalidAddress, s)
		default:
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidAddress, s, c)
		}
	}
	return Address(s), nil
}

// ValidateAddressToLower lowercases s before validating it. Rewarder
// addresses supplied at instantiation go through this path.
func ValidateAddressToLower(s string) (Address, error) {
	return ValidateAddress(strings.ToLower(s))
}

// ValidateAddresses validates every entry of list, in order.
func ValidateAddresses(list []string) ([]Address, error) {
	out := make([]Address, 0, len(list))
	for _, s := range list {
		addr, err := ValidateAddress(s)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

// String returns the address text.
func (addr Address) String() string {
	return string(addr)
}

// IsZero checks if an address is the empty address.
func (addr Address) IsZero() bool {
	return addr == ""
}
