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

package proxy

import "errors"

// ErrUnauthorized is returned when the sender may not perform an operation.
var ErrUnauthorized = errors.New("unauthorized")

// ErrAlreadyInstantiated is returned when instantiating an actor twice.
var ErrAlreadyInstantiated = errors.New("actor already instantiated")

// ErrNotInstantiated is returned by operations that need the admin list
// before the actor was instantiated.
var ErrNotInstantiated = errors.New("actor not instantiated")

// ErrUnknownMsg is returned when a JSON message names no known variant,
// or more than one.
var ErrUnknownMsg = errors.New("unknown message")
