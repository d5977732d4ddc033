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

package basics

import (
	"encoding/json"
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// AssetKind distinguishes the two flavors of asset an AssetInfo can name.
type AssetKind uint8

const (
	// NativeAsset is a bank-module coin identified by its denom.
	NativeAsset AssetKind = 1
	// TokenAsset is a fungible token contract identified by its address.
	TokenAsset AssetKind = 2
)

const ibcDenomPrefix = "ibc/"

// AssetInfo identifies a tracked asset: either a native denom or a token
// contract. Exactly one of Denom and ContractAddr is set, according to Kind.
type AssetInfo struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Kind         AssetKind `codec:"k"`
	Denom        string    `codec:"d"`
	ContractAddr Address   `codec:"c"`
}

// NativeToken returns the AssetInfo of a native denom.
func NativeToken(denom string) AssetInfo {
	return AssetInfo{Kind: NativeAsset, Denom: denom}
}

// Token returns the AssetInfo of a token contract.
func Token(contract Address) AssetInfo {
	return AssetInfo{Kind: TokenAsset, ContractAddr: contract}
}

// IsNative reports whether the asset is a native denom.
func (ai AssetInfo) IsNative() bool {
	return ai.Kind == NativeAsset
}

// Equal compares two asset identifiers.
func (ai AssetInfo) Equal(other AssetInfo) bool {
	return ai.Kind == other.Kind && ai.Denom == other.Denom && ai.ContractAddr == other.ContractAddr
}

// Check validates the asset identifier. Token contracts must be valid
// addresses; non-IBC native denoms must be lowercase.
func (ai AssetInfo) Check() error {
	switch ai.Kind {
	case NativeAsset:
		if ai.Denom == "" {
			return fmt.Errorf("%w: empty denom", ErrInvalidDenom)
		}
		if !strings.HasPrefix(ai.Denom, ibcDenomPrefix) && ai.Denom != strings.ToLower(ai.Denom) {
			return fmt.Errorf("%w: non-IBC token denom %s should be lowercase", ErrInvalidDenom, ai.Denom)
		}
		return nil
	case TokenAsset:
		_, err := ValidateAddress(string(ai.ContractAddr))
		return err
	default:
		return fmt.Errorf("unknown asset kind %d", ai.Kind)
	}
}

// Key returns a stable, collision-free binary encoding of the asset. The
// first byte is the kind, so a denom can never alias a contract address.
func (ai AssetInfo) Key() []byte {
	var body string
	if ai.Kind == NativeAsset {
		body = ai.Denom
	} else {
		body = string(ai.ContractAddr)
	}
	key := make([]byte, 0, 1+len(body))
	key = append(key, byte(ai.Kind))
	return append(key, body...)
}

func (ai AssetInfo) String() string {
	switch ai.Kind {
	case NativeAsset:
		return "native:" + ai.Denom
	case TokenAsset:
		return "token:" + string(ai.ContractAddr)
	default:
		return fmt.Sprintf("unknown(%d)", ai.Kind)
	}
}

// ParseAssetInfo reads the "native:<denom>" or "token:<addr>" form produced
// by String and checks the result.
func ParseAssetInfo(s string) (AssetInfo, error) {
	kind, body, ok := strings.Cut(s, ":")
	if !ok {
		return AssetInfo{}, fmt.Errorf("asset %q: want native:<denom> or token:<addr>", s)
	}
	var ai AssetInfo
	switch kind {
	case "native":
		ai = NativeToken(body)
	case "token":
		ai = Token(Address(body))
	default:
		return AssetInfo{}, fmt.Errorf("asset %q: unknown kind %q", s, kind)
	}
	if err := ai.Check(); err != nil {
		return AssetInfo{}, err
	}
	return ai, nil
}

type nativeTokenJSON struct {
	Denom string `json:"denom"`
}

type tokenJSON struct {
	ContractAddr string `json:"contract_addr"`
}

type assetInfoJSON struct {
	Token       *tokenJSON       `json:"token,omitempty"`
	NativeToken *nativeTokenJSON `json:"native_token,omitempty"`
}

// MarshalJSON encodes the asset as {"token":{...}} or {"native_token":{...}}.
func (ai AssetInfo) MarshalJSON() ([]byte, error) {
	switch ai.Kind {
	case NativeAsset:
		return json.Marshal(assetInfoJSON{NativeToken: &nativeTokenJSON{Denom: ai.Denom}})
	case TokenAsset:
		return json.Marshal(assetInfoJSON{Token: &tokenJSON{ContractAddr: string(ai.ContractAddr)}})
	default:
		return nil, fmt.Errorf("cannot marshal asset of kind %d", ai.Kind)
	}
}

// UnmarshalJSON decodes either JSON variant. The address is not validated
// here; callers run Check.
func (ai *AssetInfo) UnmarshalJSON(b []byte) error {
	var raw assetInfoJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.Token != nil && raw.NativeToken != nil:
		return fmt.Errorf("asset info %s names both a token and a native token", b)
	case raw.Token != nil:
		*ai = Token(Address(raw.Token.ContractAddr))
	case raw.NativeToken != nil:
		*ai = NativeToken(raw.NativeToken.Denom)
	default:
		return fmt.Errorf("asset info %s names no asset", b)
	}
	return nil
}

// Asset is an amount of a given asset.
type Asset struct {
	Info   AssetInfo
	Amount sdkmath.Uint
}

type assetJSON struct {
	Info   AssetInfo `json:"info"`
	Amount string    `json:"amount"`
}

// MarshalJSON encodes the amount as a decimal string.
func (a Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(assetJSON{Info: a.Info, Amount: AmountString(a.Amount)})
}

// UnmarshalJSON parses the amount with ParseAmount.
func (a *Asset) UnmarshalJSON(b []byte) error {
	var raw assetJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	amount, err := ParseAmount(raw.Amount)
	if err != nil {
		return err
	}
	a.Info = raw.Info
	a.Amount = amount
	return nil
}

func (a Asset) String() string {
	return AmountString(a.Amount) + " " + a.Info.String()
}
