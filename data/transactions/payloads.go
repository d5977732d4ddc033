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

package transactions

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/algorand/holder-rewards/data/basics"
)

// Cw20Transfer is the payload of a token contract transfer.
type Cw20Transfer struct {
	Recipient basics.Address
	Amount    sdkmath.Uint
}

type cw20TransferJSON struct {
	Recipient basics.Address `json:"recipient"`
	Amount    string         `json:"amount"`
}

type cw20ExecuteJSON struct {
	Transfer *cw20TransferJSON `json:"transfer,omitempty"`
}

// TransferMsg builds the message that pays asset to recipient from the
// sender's balance: a bank send for native denoms, a token transfer call
// otherwise.
func TransferMsg(asset basics.Asset, recipient basics.Address) (Msg, error) {
	switch asset.Info.Kind {
	case basics.NativeAsset:
		return Msg{Bank: &BankSend{
			ToAddress: recipient,
			Amount:    []Coin{{Denom: asset.Info.Denom, Amount: asset.Amount}},
		}}, nil
	case basics.TokenAsset:
		payload, err := json.Marshal(cw20ExecuteJSON{Transfer: &cw20TransferJSON{
			Recipient: recipient,
			Amount:    basics.AmountString(asset.Amount),
		}})
		if err != nil {
			return Msg{}, err
		}
		return Msg{Wasm: &WasmExecute{ContractAddr: asset.Info.ContractAddr, Msg: payload}}, nil
	default:
		return Msg{}, fmt.Errorf("cannot transfer asset of kind %d", asset.Info.Kind)
	}
}

// DecodeCw20Transfer extracts a token transfer from a contract payload.
// ok is false when the payload is some other call.
func DecodeCw20Transfer(payload []byte) (tr Cw20Transfer, ok bool, err error) {
	var raw cw20ExecuteJSON
	if err = json.Unmarshal(payload, &raw); err != nil || raw.Transfer == nil {
		return Cw20Transfer{}, false, nil
	}
	amount, err := basics.ParseAmount(raw.Transfer.Amount)
	if err != nil {
		return Cw20Transfer{}, true, err
	}
	return Cw20Transfer{Recipient: raw.Transfer.Recipient, Amount: amount}, true, nil
}

type claimRewardsJSON struct {
	ClaimRewards struct {
		Recipient *basics.Address `json:"recipient"`
	} `json:"claim_rewards"`
}

// ClaimRewardsMsg asks an Anchor-style reward contract to release pending
// rewards to the caller. The recipient is left null so the rewards land in
// the caller's own balance.
func ClaimRewardsMsg(rewarder basics.Address) (Msg, error) {
	payload, err := json.Marshal(claimRewardsJSON{})
	if err != nil {
		return Msg{}, err
	}
	return Msg{Wasm: &WasmExecute{ContractAddr: rewarder, Msg: payload}}, nil
}
