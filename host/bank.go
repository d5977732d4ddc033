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

// Package host simulates the chain the actor lives on: a balance book that
// answers balance queries and executes the transfer messages the actor
// emits.
package host

import (
	"context"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/algorand/go-deadlock"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/logging"
	"github.com/algorand/holder-rewards/protocol"
	"github.com/algorand/holder-rewards/util/kvstore"
)

// ErrInsufficientFunds is returned when a message spends more than the
// sender holds.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Bank keeps (holder, asset) balances in a KVStore.
type Bank struct {
	mu    deadlock.Mutex
	store kvstore.KVStore
	log   logging.Logger
}

// MakeBank returns a Bank over store.
func MakeBank(store kvstore.KVStore, log logging.Logger) *Bank {
	return &Bank{store: store, log: logging.OrBase(log)}
}

func balanceKey(holder basics.Address, ai basics.AssetInfo) string {
	asset := ai.Key()
	key := make([]byte, 0, 2+len(holder)+len(asset))
	key = append(key, byte(protocol.HostBalanceTag), byte(len(holder)))
	key = append(key, holder...)
	return string(append(key, asset...))
}

func (b *Bank) balance(key string) (sdkmath.Uint, error) {
	raw, err := b.store.Get([]byte(key))
	if errors.Is(err, kvstore.ErrNotFound) {
		return sdkmath.ZeroUint(), nil
	}
	if err != nil {
		return sdkmath.Uint{}, err
	}
	var u sdkmath.Uint
	if err := u.Unmarshal(raw); err != nil {
		return sdkmath.Uint{}, fmt.Errorf("balance %x: %w", key, err)
	}
	return u, nil
}

// QueryBalance returns holder's balance of ai.
func (b *Bank) QueryBalance(ctx context.Context, holder basics.Address, ai basics.AssetInfo) (sdkmath.Uint, error) {
	if err := ctx.Err(); err != nil {
		return sdkmath.Uint{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance(balanceKey(holder, ai))
}

// Mint credits holder with asset out of thin air, the way yield shows up
// in the actor's balance.
func (b *Bank) Mint(holder basics.Address, asset basics.Asset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := b.begin()
	if err := tx.credit(holder, asset); err != nil {
		return err
	}
	return tx.commit()
}

// Apply executes msgs on behalf of sender. Bank sends and token transfer
// calls move balances; any other message is returned as unapplied. Either
// every balance change is persisted or none is.
func (b *Bank) Apply(sender basics.Address, msgs []transactions.Msg) (unapplied []transactions.Msg, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := b.begin()
	for i, msg := range msgs {
		if err := msg.Validate(); err != nil {
			return nil, fmt.Errorf("msg %d: %w", i, err)
		}
		if msg.Bank != nil {
			for _, c := range msg.Bank.Amount {
				if err := tx.move(sender, msg.Bank.ToAddress, basics.Asset{Info: basics.NativeToken(c.Denom), Amount: c.Amount}); err != nil {
					return nil, fmt.Errorf("msg %d: %w", i, err)
				}
			}
			continue
		}

		for _, c := range msg.Wasm.Funds {
			if err := tx.move(sender, msg.Wasm.ContractAddr, basics.Asset{Info: basics.NativeToken(c.Denom), Amount: c.Amount}); err != nil {
				return nil, fmt.Errorf("msg %d funds: %w", i, err)
			}
		}
		tr, ok, err := transactions.DecodeCw20Transfer(msg.Wasm.Msg)
		if err != nil {
			return nil, fmt.Errorf("msg %d: %w", i, err)
		}
		if !ok {
			unapplied = append(unapplied, msg)
			continue
		}
		token := basics.Asset{Info: basics.Token(msg.Wasm.ContractAddr), Amount: tr.Amount}
		if err := tx.move(sender, tr.Recipient, token); err != nil {
			return nil, fmt.Errorf("msg %d: %w", i, err)
		}
	}

	if err := tx.commit(); err != nil {
		return nil, err
	}
	b.log.Debugf("applied %d messages from %s, %d unapplied", len(msgs), sender, len(unapplied))
	return unapplied, nil
}

// bankTx buffers balance changes until commit.
type bankTx struct {
	bank    *Bank
	pending map[string]sdkmath.Uint
}

func (b *Bank) begin() *bankTx {
	return &bankTx{bank: b, pending: make(map[string]sdkmath.Uint)}
}

func (tx *bankTx) get(key string) (sdkmath.Uint, error) {
	if v, ok := tx.pending[key]; ok {
		return v, nil
	}
	return tx.bank.balance(key)
}

func (tx *bankTx) credit(holder basics.Address, asset basics.Asset) error {
	key := balanceKey(holder, asset.Info)
	bal, err := tx.get(key)
	if err != nil {
		return err
	}
	bal, err = basics.OAddAmount(bal, asset.Amount)
	if err != nil {
		return err
	}
	tx.pending[key] = bal
	return nil
}

func (tx *bankTx) debit(holder basics.Address, asset basics.Asset) error {
	key := balanceKey(holder, asset.Info)
	bal, err := tx.get(key)
	if err != nil {
		return err
	}
	if asset.Amount.GT(bal) {
		return fmt.Errorf("%w: %s holds %s, needs %s", ErrInsufficientFunds, holder, basics.Asset{Info: asset.Info, Amount: bal}, asset)
	}
	tx.pending[key] = bal.Sub(asset.Amount)
	return nil
}

func (tx *bankTx) move(from, to basics.Address, asset basics.Asset) error {
	if _, err := basics.ValidateAddress(string(to)); err != nil {
		return err
	}
	if err := tx.debit(from, asset); err != nil {
		return err
	}
	return tx.credit(to, asset)
}

func (tx *bankTx) commit() error {
	if len(tx.pending) == 0 {
		return nil
	}
	batch := tx.bank.store.NewBatch()
	for key, bal := range tx.pending {
		raw, err := bal.Marshal()
		if err != nil {
			batch.Cancel()
			return err
		}
		if err := batch.Set([]byte(key), raw); err != nil {
			batch.Cancel()
			return err
		}
	}
	return batch.Commit()
}
