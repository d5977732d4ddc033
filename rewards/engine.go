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

package rewards

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/ledger"
	"github.com/algorand/holder-rewards/logging"
)

// Querier reports the balance an address holds of an asset.
type Querier interface {
	QueryBalance(ctx context.Context, holder basics.Address, ai basics.AssetInfo) (sdkmath.Uint, error)
}

// QueryBalances returns holder's balance of every asset, in order.
func QueryBalances(ctx context.Context, q Querier, holder basics.Address, infos []basics.AssetInfo) ([]basics.Asset, error) {
	out := make([]basics.Asset, 0, len(infos))
	for _, ai := range infos {
		amount, err := q.QueryBalance(ctx, holder, ai)
		if err != nil {
			return nil, fmt.Errorf("query balance of %s: %w", ai, err)
		}
		out = append(out, basics.Asset{Info: ai, Amount: amount})
	}
	return out, nil
}

// SettleRequest carries the figures a settlement trusts its caller for:
// the actor's balances before the triggering event and the user's and
// pool's shares as they were while the reward accrued.
type SettleRequest struct {
	PreviousBalances []basics.Asset
	OldUserShare     sdkmath.Uint
	OldTotalShare    sdkmath.Uint
	User             basics.Address
	// Receiver gets the payout instead of User when set.
	Receiver string
}

// Engine folds newly arrived rewards into the global indexes and pays one
// user what they accrued since their last settlement.
type Engine struct {
	// Self is the address whose balances accumulate rewards.
	Self    basics.Address
	Querier Querier
	Log     logging.Logger
}

// Settlement is the outcome of one settlement. Its writes sit in the
// Writer it ran against until the caller commits them.
type Settlement struct {
	// Msgs pays the user; empty when nothing was owed.
	Msgs []transactions.Msg
	// Indexes holds the updated global index per asset, keyed by the
	// asset's String form.
	Indexes map[string]sdkmath.LegacyDec
	// Clamped lists the assets whose balance had decreased.
	Clamped []string

	noop bool
}

// Settle performs one settlement against w. All writes go to w and are
// only persisted if the caller commits it. Without a tracked asset
// configuration it does nothing.
func (e *Engine) Settle(ctx context.Context, w ledger.Writer, req SettleRequest) (Settlement, error) {
	log := logging.OrBase(e.Log)

	info, ok, err := ledger.Infos.Lookup(w)
	if err != nil {
		return Settlement{}, err
	}
	if !ok {
		return Settlement{noop: true}, nil
	}

	user, err := basics.ValidateAddress(string(req.User))
	if err != nil {
		return Settlement{}, fmt.Errorf("user: %w", err)
	}
	receiver := user
	if req.Receiver != "" {
		receiver, err = basics.ValidateAddress(req.Receiver)
		if err != nil {
			return Settlement{}, fmt.Errorf("receiver: %w", err)
		}
	}
	if err = checkShares(req); err != nil {
		return Settlement{}, err
	}
	if len(req.PreviousBalances) != len(info.AssetInfos) {
		return Settlement{}, fmt.Errorf("%w: got %d balances for %d assets", ErrBalancesMismatch, len(req.PreviousBalances), len(info.AssetInfos))
	}
	for i, prev := range req.PreviousBalances {
		if !prev.Info.Equal(info.AssetInfos[i]) {
			return Settlement{}, fmt.Errorf("%w: balance %d is %s, expected %s", ErrBalancesMismatch, i, prev.Info, info.AssetInfos[i])
		}
	}

	current, err := QueryBalances(ctx, e.Querier, e.Self, info.AssetInfos)
	if err != nil {
		return Settlement{}, err
	}

	out := Settlement{Indexes: make(map[string]sdkmath.LegacyDec, len(current))}
	for i, cur := range current {
		ai := cur.Info
		prev := req.PreviousBalances[i].Amount
		if cur.Amount.LT(prev) {
			log.With("asset", ai.String()).Warnf("balance decreased from %s to %s, no reward", prev, cur.Amount)
			out.Clamped = append(out.Clamped, ai.String())
		}
		reward := basics.SubSaturateAmount(cur.Amount, prev)

		global, err := ledger.GlobalIndex(w, ai)
		if err != nil {
			return Settlement{}, err
		}
		delta, err := basics.RewardPerShare(reward, req.OldTotalShare)
		if err != nil {
			return Settlement{}, fmt.Errorf("%s: %w", ai, err)
		}
		global, err = basics.OAddIndex(global, delta)
		if err != nil {
			return Settlement{}, err
		}
		userIdx, err := ledger.UserIndex(w, user, ai)
		if err != nil {
			return Settlement{}, err
		}
		owed, err := basics.AccruedAmount(global, userIdx, req.OldUserShare)
		if err != nil {
			return Settlement{}, fmt.Errorf("%s: %w", ai, err)
		}

		if err = ledger.GlobalIndexes.Put(w, ai, global); err != nil {
			return Settlement{}, err
		}
		if !owed.IsZero() {
			msg, err := transactions.TransferMsg(basics.Asset{Info: ai, Amount: owed}, receiver)
			if err != nil {
				return Settlement{}, err
			}
			out.Msgs = append(out.Msgs, msg)
		}
		if err = ledger.UserIndexes.Put(w, ledger.UserAsset{User: user, Asset: ai}, global); err != nil {
			return Settlement{}, err
		}
		out.Indexes[ai.String()] = global

		log.WithFields(logging.Fields{
			"asset":  ai.String(),
			"reward": reward.String(),
			"index":  global.String(),
			"owed":   owed.String(),
		}).Debugf("settled %s for %s", ai, user)
	}
	return out, nil
}

func checkShares(req SettleRequest) error {
	if req.OldUserShare == (sdkmath.Uint{}) || req.OldTotalShare == (sdkmath.Uint{}) {
		return fmt.Errorf("settlement shares must be set")
	}
	if err := basics.CheckAmount(req.OldUserShare); err != nil {
		return fmt.Errorf("old user share: %w", err)
	}
	if err := basics.CheckAmount(req.OldTotalShare); err != nil {
		return fmt.Errorf("old total share: %w", err)
	}
	for _, prev := range req.PreviousBalances {
		if prev.Amount == (sdkmath.Uint{}) {
			return fmt.Errorf("%w: no amount for %s", ErrBalancesMismatch, prev.Info)
		}
	}
	return nil
}
