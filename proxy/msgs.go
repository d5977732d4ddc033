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

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/bookkeeping"
	"github.com/algorand/holder-rewards/data/transactions"
)

// InstantiateMsg sets up a new actor.
type InstantiateMsg struct {
	Admins  []string         `json:"admins"`
	Mutable bool             `json:"mutable"`
	Info    bookkeeping.Info `json:"info"`
}

// RelayMsg re-dispatches messages with the actor as sender.
type RelayMsg struct {
	Msgs []transactions.Msg `json:"msgs"`
}

// UpdateAdminsMsg replaces the admin set.
type UpdateAdminsMsg struct {
	Admins []string `json:"admins"`
}

// HandleRewardsMsg settles one user's rewards. Share figures are decimal
// strings.
type HandleRewardsMsg struct {
	PreviousAssetsBalances []basics.Asset `json:"previous_assets_balances"`
	OldUserShare           string         `json:"old_user_share"`
	OldTotalShare          string         `json:"old_total_share"`
	User                   string         `json:"user"`
	Receiver               *string        `json:"receiver,omitempty"`
}

// Empty is the body of variants without arguments.
type Empty struct{}

// ExecuteMsg is a mutating request. Exactly one field is set.
type ExecuteMsg struct {
	Execute       *RelayMsg         `json:"execute,omitempty"`
	Freeze        *Empty            `json:"freeze,omitempty"`
	UpdateAdmins  *UpdateAdminsMsg  `json:"update_admins,omitempty"`
	HandleRewards *HandleRewardsMsg `json:"handle_rewards,omitempty"`
}

// CanExecuteMsg asks whether sender may relay msg.
type CanExecuteMsg struct {
	Sender string           `json:"sender"`
	Msg    transactions.Msg `json:"msg"`
}

// QueryMsg is a read-only request. Exactly one field is set.
type QueryMsg struct {
	AdminList                             *Empty         `json:"admin_list,omitempty"`
	CanExecute                            *CanExecuteMsg `json:"can_execute,omitempty"`
	AssetsBalancesAndClaimRewardsMessages *Empty         `json:"assets_balances_and_claim_rewards_messages,omitempty"`
	ContractVersion                       *Empty         `json:"contract_version,omitempty"`
}

// variants counts the set flags.
func variants(fields ...bool) int {
	n := 0
	for _, set := range fields {
		if set {
			n++
		}
	}
	return n
}

// UnmarshalJSON rejects unknown and ambiguous variants.
func (m *ExecuteMsg) UnmarshalJSON(b []byte) error {
	type plain ExecuteMsg
	var p plain
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownMsg, err)
	}
	if variants(p.Execute != nil, p.Freeze != nil, p.UpdateAdmins != nil, p.HandleRewards != nil) != 1 {
		return fmt.Errorf("%w: %s", ErrUnknownMsg, b)
	}
	*m = ExecuteMsg(p)
	return nil
}

// UnmarshalJSON rejects unknown and ambiguous variants.
func (m *QueryMsg) UnmarshalJSON(b []byte) error {
	type plain QueryMsg
	var p plain
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownMsg, err)
	}
	if variants(p.AdminList != nil, p.CanExecute != nil, p.AssetsBalancesAndClaimRewardsMessages != nil, p.ContractVersion != nil) != 1 {
		return fmt.Errorf("%w: %s", ErrUnknownMsg, b)
	}
	*m = QueryMsg(p)
	return nil
}

// Attribute is a key/value event attribute attached to a Response.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the outcome of a mutating request: messages to dispatch with
// the actor as sender, and attributes describing what happened.
type Response struct {
	Messages   []transactions.Msg `json:"messages"`
	Attributes []Attribute        `json:"attributes"`
}

func actionResponse(action string, msgs []transactions.Msg) Response {
	if msgs == nil {
		msgs = []transactions.Msg{}
	}
	return Response{Messages: msgs, Attributes: []Attribute{{Key: "action", Value: action}}}
}

// Attribute returns the value of the first attribute named key.
func (r Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// AdminListResponse lists the admins and whether they may still change.
type AdminListResponse struct {
	Admins  []string `json:"admins"`
	Mutable bool     `json:"mutable"`
}

// Canonical sorts and dedups the admins, so responses that mean the same
// compare equal.
func (r AdminListResponse) Canonical() AdminListResponse {
	admins := slices.Clone(r.Admins)
	slices.Sort(admins)
	return AdminListResponse{Admins: slices.Compact(admins), Mutable: r.Mutable}
}

// CanExecuteResponse answers a CanExecuteMsg.
type CanExecuteResponse struct {
	CanExecute bool `json:"can_execute"`
}

// BalancesAndClaimMessagesResponse lists the actor's balance of every
// tracked asset and the claim messages to dispatch before settling.
type BalancesAndClaimMessagesResponse struct {
	Balances []basics.Asset     `json:"balances"`
	Messages []transactions.Msg `json:"messages"`
}
