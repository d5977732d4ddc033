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
	"context"
	"encoding/json"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/bookkeeping"
	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/ledger"
	"github.com/algorand/holder-rewards/rewards"
)

// AdminList returns the admins and the mutability flag.
func (a *Actor) AdminList() (AdminListResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	al, err := loadAdmins(a.ledger)
	if err != nil {
		return AdminListResponse{}, err
	}
	return AdminListResponse{Admins: al.Strings(), Mutable: al.Mutable}, nil
}

// CanExecute reports whether sender may relay msg. Only admin membership
// matters; the message content is not inspected.
func (a *Actor) CanExecute(sender string, msg transactions.Msg) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	al, err := loadAdmins(a.ledger)
	if err != nil {
		return false, err
	}
	return al.IsAdmin(basics.Address(sender)), nil
}

// BalancesAndClaimMessages returns the actor's balance of every tracked
// asset and the messages that release pending external rewards. Both are
// empty when no tracked asset configuration exists.
func (a *Actor) BalancesAndClaimMessages(ctx context.Context) (BalancesAndClaimMessagesResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	resp := BalancesAndClaimMessagesResponse{Balances: []basics.Asset{}, Messages: []transactions.Msg{}}
	info, ok, err := ledger.Infos.Lookup(a.ledger)
	if err != nil || !ok {
		return resp, err
	}
	balances, err := rewards.QueryBalances(ctx, a.engine.Querier, a.self, info.AssetInfos)
	if err != nil {
		return resp, err
	}
	msgs, err := rewards.BuildClaimMessages(info.Rewarders)
	if err != nil {
		return resp, err
	}
	resp.Balances = balances
	resp.Messages = msgs
	return resp, nil
}

// ContractVersion returns the version record written at instantiation.
func (a *Actor) ContractVersion() (bookkeeping.ContractVersion, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return ledger.ContractVersions.Get(a.ledger)
}

// Query dispatches a read-only request and returns its JSON answer.
func (a *Actor) Query(ctx context.Context, msg QueryMsg) ([]byte, error) {
	var (
		resp interface{}
		err  error
	)
	switch {
	case msg.AdminList != nil:
		resp, err = a.AdminList()
	case msg.CanExecute != nil:
		var can bool
		can, err = a.CanExecute(msg.CanExecute.Sender, msg.CanExecute.Msg)
		resp = CanExecuteResponse{CanExecute: can}
	case msg.AssetsBalancesAndClaimRewardsMessages != nil:
		resp, err = a.BalancesAndClaimMessages(ctx)
	case msg.ContractVersion != nil:
		resp, err = a.ContractVersion()
	default:
		return nil, ErrUnknownMsg
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(resp)
}
