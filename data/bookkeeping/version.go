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

// ContractName is recorded at instantiation for migration bookkeeping.
const ContractName = "holder-rewards"

// ContractVersion identifies the code that created the persisted state.
type ContractVersion struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Contract string `codec:"contract" json:"contract"`
	Version  string `codec:"version" json:"version"`
}

// CurrentVersion is the version written by this build.
var CurrentVersion = ContractVersion{Contract: ContractName, Version: "1.0.0"}
