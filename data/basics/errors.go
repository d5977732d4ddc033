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

import "errors"

// ErrInvalidAddress is returned when an identity is not a normalized address.
var ErrInvalidAddress = errors.New("invalid address")

// ErrInvalidDenom is returned when a native token denomination is malformed.
var ErrInvalidDenom = errors.New("invalid denom")

// ErrOverflow is returned when an amount or index computation does not fit
// the integer or decimal width it is stored in.
var ErrOverflow = errors.New("arithmetic overflow")

// ErrZeroTotalShare is returned when a reward arrived but the share total it
// should be divided by is zero, so no holder could be credited with it.
var ErrZeroTotalShare = errors.New("reward arrived with zero total share")
