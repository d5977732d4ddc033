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
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/algorand/holder-rewards/data/basics"
)

// ErrMalformedMsg is returned when a message does not carry exactly one
// known variant.
var ErrMalformedMsg = errors.New("malformed message")

// Coin is an amount of a native denom.
type Coin struct {
	Denom  string
	Amount sdkmath.Uint
}

type coinJSON struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// MarshalJSON encodes the amount as a decimal string.
func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(coinJSON{Denom: c.Denom, Amount: basics.AmountString(c.Amount)})
}

// UnmarshalJSON parses the amount with basics.ParseAmount.
func (c *Coin) UnmarshalJSON(b []byte) error {
	var raw coinJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	amount, err := basics.ParseAmount(raw.Amount)
	if err != nil {
		return err
	}
	c.Denom = raw.Denom
	c.Amount = amount
	return nil
}

// BankSend moves native coins from the sender to ToAddress.
type BankSend struct {
	ToAddress basics.Address `json:"to_address"`
	Amount    []Coin         `json:"amount"`
}

// WasmExecute invokes a contract with a JSON payload. Msg is carried as
// raw bytes and appears base64-encoded on the wire.
type WasmExecute struct {
	ContractAddr basics.Address `json:"contract_addr"`
	Msg          []byte         `json:"msg"`
	Funds        []Coin         `json:"funds"`
}

type bankMsg struct {
	Send *BankSend `json:"send,omitempty"`
}

type wasmMsg struct {
	Execute *WasmExecute `json:"execute,omitempty"`
}

// Msg is an outbound message emitted by the actor. It is a closed variant:
// exactly one of Bank and Wasm is set.
type Msg struct {
	Bank *BankSend
	Wasm *WasmExecute
}

type msgJSON struct {
	Bank *bankMsg `json:"bank,omitempty"`
	Wasm *wasmMsg `json:"wasm,omitempty"`
}

// Validate checks that exactly one variant is present.
func (m Msg) Validate() error {
	switch {
	case m.Bank != nil && m.Wasm != nil:
		return fmt.Errorf("%w: both bank and wasm set", ErrMalformedMsg)
	case m.Bank == nil && m.Wasm == nil:
		return fmt.Errorf("%w: empty", ErrMalformedMsg)
	}
	return nil
}

// MarshalJSON encodes the message as {"bank":{"send":..}} or
// {"wasm":{"execute":..}}.
func (m Msg) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var out msgJSON
	if m.Bank != nil {
		send := *m.Bank
		if send.Amount == nil {
			send.Amount = []Coin{}
		}
		out.Bank = &bankMsg{Send: &send}
	} else {
		exec := *m.Wasm
		if exec.Funds == nil {
			exec.Funds = []Coin{}
		}
		out.Wasm = &wasmMsg{Execute: &exec}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the two supported message shapes and rejects
// everything else.
func (m *Msg) UnmarshalJSON(b []byte) error {
	var raw msgJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out Msg
	if raw.Bank != nil {
		if raw.Bank.Send == nil {
			return fmt.Errorf("%w: unsupported bank message %s", ErrMalformedMsg, b)
		}
		out.Bank = raw.Bank.Send
	}
	if raw.Wasm != nil {
		if raw.Wasm.Execute == nil {
			return fmt.Errorf("%w: unsupported wasm message %s", ErrMalformedMsg, b)
		}
		out.Wasm = raw.Wasm.Execute
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*m = out
	return nil
}

func (m Msg) String() string {
	switch {
	case m.Bank != nil:
		return fmt.Sprintf("bank send to %s (%d coins)", m.Bank.ToAddress, len(m.Bank.Amount))
	case m.Wasm != nil:
		return fmt.Sprintf("wasm execute %s: %s", m.Wasm.ContractAddr, m.Wasm.Msg)
	default:
		return "empty msg"
	}
}
