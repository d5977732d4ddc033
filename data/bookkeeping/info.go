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
	"encoding/json"
	"fmt"

	"github.com/algorand/holder-rewards/data/basics"
)

// Handler selects how pending rewards are claimed from a rewarder.
type Handler string

const (
	// AnchorBluna claims bLuna holder rewards from the Anchor reward contract.
	AnchorBluna Handler = "AnchorBluna"
)

// Known reports whether h is one of the supported handlers.
func (h Handler) Known() bool {
	switch h {
	case AnchorBluna:
		return true
	}
	return false
}

// Rewarder is an external protocol from which rewards must be claimed
// before they show up in the actor's balance.
type Rewarder struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Address basics.Address `codec:"addr" json:"address"`
	Handler Handler        `codec:"h" json:"handler"`
}

// Info is the tracked asset configuration, fixed at instantiation.
type Info struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Rewarders  []Rewarder         `codec:"rw" json:"rewarders"`
	AssetInfos []basics.AssetInfo `codec:"ai" json:"asset_infos"`
}

// Validate normalizes rewarder addresses, checks every asset identifier and
// rejects duplicate assets. It returns the normalized Info.
func (info Info) Validate() (Info, error) {
	out := Info{
		Rewarders:  make([]Rewarder, 0, len(info.Rewarders)),
		AssetInfos: make([]basics.AssetInfo, 0, len(info.AssetInfos)),
	}
	for _, rw := range info.Rewarders {
		addr, err := basics.ValidateAddressToLower(string(rw.Address))
		if err != nil {
			return Info{}, fmt.Errorf("rewarder: %w", err)
		}
		if !rw.Handler.Known() {
			return Info{}, fmt.Errorf("%w: %q", ErrUnknownHandler, rw.Handler)
		}
		out.Rewarders = append(out.Rewarders, Rewarder{Address: addr, Handler: rw.Handler})
	}

	seen := make(map[string]bool, len(info.AssetInfos))
	for _, ai := range info.AssetInfos {
		if err := ai.Check(); err != nil {
			return Info{}, err
		}
		key := string(ai.Key())
		if seen[key] {
			return Info{}, fmt.Errorf("%w: %s", ErrDuplicateAssetInfo, ai)
		}
		seen[key] = true
		out.AssetInfos = append(out.AssetInfos, ai)
	}
	return out, nil
}

// MarshalJSON keeps empty lists as [] rather than null.
func (info Info) MarshalJSON() ([]byte, error) {
	type plain Info
	p := plain(info)
	if p.Rewarders == nil {
		p.Rewarders = []Rewarder{}
	}
	if p.AssetInfos == nil {
		p.AssetInfos = []basics.AssetInfo{}
	}
	return json.Marshal(p)
}
