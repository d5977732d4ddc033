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

// Package proxy is the entry surface of the holder rewards actor. It gates
// message relay, freezing and admin updates behind the admin list and
// runs reward settlements, committing each call's writes atomically.
package proxy

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/algorand/go-deadlock"
	"golang.org/x/exp/slices"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/bookkeeping"
	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/ledger"
	"github.com/algorand/holder-rewards/logging"
	"github.com/algorand/holder-rewards/rewards"
	"github.com/algorand/holder-rewards/util/kvstore"
)

// Response actions.
const (
	ActionExecute       = "execute"
	ActionFreeze        = "freeze"
	ActionUpdateAdmins  = "update_admins"
	ActionHandleRewards = "handle_rewards"
)

// Config wires an Actor to its collaborators.
type Config struct {
	Log     logging.Logger
	Store   kvstore.KVStore
	Querier rewards.Querier
	// Self is the address the actor holds balances under.
	Self basics.Address
	// SettlementCallers may invoke HandleRewards. Empty means anyone can.
	SettlementCallers []basics.Address
}

// Actor serves one holder rewards instance. Calls are serialized: each runs
// to completion against a consistent state and either commits all of its
// writes or none.
type Actor struct {
	mu      deadlock.Mutex
	log     logging.Logger
	ledger  *ledger.Ledger
	engine  rewards.Engine
	self    basics.Address
	callers []basics.Address
}

// MakeActor validates cfg and returns an Actor.
func MakeActor(cfg Config) (*Actor, error) {
	if cfg.Store == nil || cfg.Querier == nil {
		return nil, fmt.Errorf("actor needs a store and a querier")
	}
	self, err := basics.ValidateAddress(string(cfg.Self))
	if err != nil {
		return nil, fmt.Errorf("actor address: %w", err)
	}
	for _, c := range cfg.SettlementCallers {
		if _, err := basics.ValidateAddress(string(c)); err != nil {
			return nil, fmt.Errorf("settlement caller: %w", err)
		}
	}
	log := logging.OrBase(cfg.Log)
	if len(cfg.SettlementCallers) == 0 {
		log.Warn("no settlement callers configured: anyone may call handle_rewards with arbitrary share figures")
	}
	return &Actor{
		log:     log,
		ledger:  ledger.Open(cfg.Store, log),
		engine:  rewards.Engine{Self: self, Querier: cfg.Querier, Log: log},
		self:    self,
		callers: cfg.SettlementCallers,
	}, nil
}

// Self returns the actor's own address.
func (a *Actor) Self() basics.Address {
	return a.self
}

// Ledger exposes the committed state for read-only inspection.
func (a *Actor) Ledger() *ledger.Ledger {
	return a.ledger
}

// mutate runs fn against a fresh overlay and commits it if fn succeeds.
func (a *Actor) mutate(fn func(cow *ledger.Cow) (Response, error)) (Response, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.commitWith(fn)
}

// commitWith is mutate without taking the lock.
func (a *Actor) commitWith(fn func(cow *ledger.Cow) (Response, error)) (Response, error) {
	cow := a.ledger.NewCow()
	resp, err := fn(cow)
	if err != nil {
		cow.Discard()
		return Response{}, err
	}
	if err := cow.Commit(); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// Instantiate validates and stores the admin list and tracked asset
// configuration, and starts every tracked asset at a zero global index.
func (a *Actor) Instantiate(sender basics.Address, msg InstantiateMsg) (Response, error) {
	return a.mutate(func(cow *ledger.Cow) (Response, error) {
		if _, ok, err := ledger.AdminLists.Lookup(cow); err != nil {
			return Response{}, err
		} else if ok {
			return Response{}, ErrAlreadyInstantiated
		}

		info, err := msg.Info.Validate()
		if err != nil {
			return Response{}, err
		}
		admins, err := bookkeeping.MakeAdminList(msg.Admins, msg.Mutable)
		if err != nil {
			return Response{}, fmt.Errorf("admins: %w", err)
		}

		if err := ledger.ContractVersions.Put(cow, bookkeeping.CurrentVersion); err != nil {
			return Response{}, err
		}
		if err := ledger.Infos.Put(cow, info); err != nil {
			return Response{}, err
		}
		if err := ledger.AdminLists.Put(cow, admins); err != nil {
			return Response{}, err
		}
		for _, ai := range info.AssetInfos {
			if err := ledger.GlobalIndexes.Put(cow, ai, sdkmath.LegacyZeroDec()); err != nil {
				return Response{}, err
			}
		}

		a.log.With("sender", sender.String()).Infof("instantiated with %d admins, %d assets, %d rewarders",
			len(admins.Admins), len(info.AssetInfos), len(info.Rewarders))
		return Response{Messages: []transactions.Msg{}, Attributes: []Attribute{}}, nil
	})
}

// Execute dispatches a mutating request.
func (a *Actor) Execute(ctx context.Context, sender basics.Address, msg ExecuteMsg) (Response, error) {
	switch {
	case msg.Execute != nil:
		return a.Relay(sender, msg.Execute.Msgs)
	case msg.Freeze != nil:
		return a.Freeze(sender)
	case msg.UpdateAdmins != nil:
		return a.UpdateAdmins(sender, msg.UpdateAdmins.Admins)
	case msg.HandleRewards != nil:
		req, err := settleRequest(*msg.HandleRewards)
		if err != nil {
			return Response{}, err
		}
		return a.HandleRewards(ctx, sender, req)
	default:
		return Response{}, ErrUnknownMsg
	}
}

func loadAdmins(r ledger.Reader) (bookkeeping.AdminList, error) {
	al, ok, err := ledger.AdminLists.Lookup(r)
	if err != nil {
		return bookkeeping.AdminList{}, err
	}
	if !ok {
		return bookkeeping.AdminList{}, ErrNotInstantiated
	}
	return al, nil
}

// Relay re-emits msgs unmodified, with the actor as sender. Any admin may
// relay, even after the admin list was frozen.
func (a *Actor) Relay(sender basics.Address, msgs []transactions.Msg) (Response, error) {
	return a.mutate(func(cow *ledger.Cow) (Response, error) {
		al, err := loadAdmins(cow)
		if err != nil {
			return Response{}, err
		}
		if !al.IsAdmin(sender) {
			return Response{}, ErrUnauthorized
		}
		for i, m := range msgs {
			if err := m.Validate(); err != nil {
				return Response{}, fmt.Errorf("msg %d: %w", i, err)
			}
		}
		a.log.With("action", ActionExecute).Infof("%s relays %d messages", sender, len(msgs))
		return actionResponse(ActionExecute, msgs), nil
	})
}

// Freeze makes the admin list permanently immutable.
func (a *Actor) Freeze(sender basics.Address) (Response, error) {
	return a.mutate(func(cow *ledger.Cow) (Response, error) {
		al, err := loadAdmins(cow)
		if err != nil {
			return Response{}, err
		}
		if !al.CanModify(sender) {
			return Response{}, ErrUnauthorized
		}
		al.Mutable = false
		if err := ledger.AdminLists.Put(cow, al); err != nil {
			return Response{}, err
		}
		a.log.With("action", ActionFreeze).Infof("%s froze the admin list", sender)
		return actionResponse(ActionFreeze, nil), nil
	})
}

// UpdateAdmins replaces the admin set wholesale.
func (a *Actor) UpdateAdmins(sender basics.Address, admins []string) (Response, error) {
	return a.mutate(func(cow *ledger.Cow) (Response, error) {
		al, err := loadAdmins(cow)
		if err != nil {
			return Response{}, err
		}
		if !al.CanModify(sender) {
			return Response{}, ErrUnauthorized
		}
		validated, err := basics.ValidateAddresses(admins)
		if err != nil {
			return Response{}, err
		}
		al.Admins = validated
		if err := ledger.AdminLists.Put(cow, al); err != nil {
			return Response{}, err
		}
		a.log.With("action", ActionUpdateAdmins).Infof("%s set admins to %v", sender, admins)
		return actionResponse(ActionUpdateAdmins, nil), nil
	})
}

// HandleRewards settles one user's rewards and returns the payouts.
// Settlement metrics are recorded only once the settlement is committed.
func (a *Actor) HandleRewards(ctx context.Context, sender basics.Address, req rewards.SettleRequest) (Response, error) {
	if len(a.callers) > 0 && !slices.Contains(a.callers, sender) {
		return Response{}, fmt.Errorf("%w: %s may not settle rewards", ErrUnauthorized, sender)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var settlement rewards.Settlement
	resp, err := a.commitWith(func(cow *ledger.Cow) (Response, error) {
		var err error
		settlement, err = a.engine.Settle(ctx, cow, req)
		if err != nil {
			return Response{}, err
		}
		return actionResponse(ActionHandleRewards, settlement.Msgs), nil
	})
	if err != nil {
		rewards.ObserveFailure()
		return Response{}, err
	}
	settlement.Observe()
	a.log.With("action", ActionHandleRewards).Infof("settled rewards of %s: %d transfers", req.User, len(settlement.Msgs))
	return resp, nil
}

func settleRequest(m HandleRewardsMsg) (rewards.SettleRequest, error) {
	userShare, err := basics.ParseAmount(m.OldUserShare)
	if err != nil {
		return rewards.SettleRequest{}, fmt.Errorf("old_user_share: %w", err)
	}
	totalShare, err := basics.ParseAmount(m.OldTotalShare)
	if err != nil {
		return rewards.SettleRequest{}, fmt.Errorf("old_total_share: %w", err)
	}
	req := rewards.SettleRequest{
		PreviousBalances: m.PreviousAssetsBalances,
		OldUserShare:     userShare,
		OldTotalShare:    totalShare,
		User:             basics.Address(m.User),
	}
	if m.Receiver != nil {
		req.Receiver = *m.Receiver
	}
	return req, nil
}
