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
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// amountBits is the width of every token amount and share figure.
const amountBits = 128

// MaxAmount is the largest representable token amount, 2^128-1.
var MaxAmount = sdkmath.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), amountBits), big.NewInt(1)))

// catchOverflow converts a panic raised by the math library into ErrOverflow.
func catchOverflow(err *error, op string) {
	if x := recover(); x != nil {
		*err = fmt.Errorf("%w: %s: %v", ErrOverflow, op, x)
	}
}

// CheckAmount returns ErrOverflow if u does not fit in 128 bits.
func CheckAmount(u sdkmath.Uint) error {
	if u.BigInt().BitLen() > amountBits {
		return fmt.Errorf("%w: %s exceeds %d bits", ErrOverflow, u, amountBits)
	}
	return nil
}

// ParseAmount parses a decimal string into an amount. The empty string is
// rejected; values wider than 128 bits are ErrOverflow.
func ParseAmount(s string) (u sdkmath.Uint, err error) {
	defer catchOverflow(&err, "parse amount")
	u, err = sdkmath.ParseUint(s)
	if err != nil {
		return sdkmath.ZeroUint(), fmt.Errorf("cannot parse amount %q: %w", s, err)
	}
	if err = CheckAmount(u); err != nil {
		return sdkmath.ZeroUint(), err
	}
	return u, nil
}

// AmountString formats an amount, treating the unset value as zero.
func AmountString(u sdkmath.Uint) string {
	if u == (sdkmath.Uint{}) {
		return "0"
	}
	return u.String()
}

// OAddAmount adds two amounts, failing if the sum exceeds 128 bits.
func OAddAmount(a, b sdkmath.Uint) (res sdkmath.Uint, err error) {
	defer catchOverflow(&err, "add")
	res = a.Add(b)
	if err = CheckAmount(res); err != nil {
		return sdkmath.ZeroUint(), err
	}
	return res, nil
}

// OSubAmount subtracts b from a, failing if b > a.
func OSubAmount(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	if b.GT(a) {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s - %s underflows", ErrOverflow, a, b)
	}
	return a.Sub(b), nil
}

// SubSaturateAmount subtracts b from a with saturation at zero.
func SubSaturateAmount(a, b sdkmath.Uint) sdkmath.Uint {
	if b.GT(a) {
		return sdkmath.ZeroUint()
	}
	return a.Sub(b)
}

// RewardPerShare returns reward/totalShare as an 18-digit fixed-point
// decimal, rounded down. With a zero totalShare only a zero reward is
// accepted; any other reward fails with ErrZeroTotalShare.
func RewardPerShare(reward, totalShare sdkmath.Uint) (ratio sdkmath.LegacyDec, err error) {
	defer catchOverflow(&err, "reward per share")
	if totalShare.IsZero() {
		if !reward.IsZero() {
			return sdkmath.LegacyZeroDec(), fmt.Errorf("%w: reward %s", ErrZeroTotalShare, reward)
		}
		return sdkmath.LegacyZeroDec(), nil
	}
	num := sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromBigInt(reward.BigInt()))
	return num.QuoInt(sdkmath.NewIntFromBigInt(totalShare.BigInt())), nil
}

// OAddIndex adds an increment to a reward index.
func OAddIndex(index, delta sdkmath.LegacyDec) (res sdkmath.LegacyDec, err error) {
	defer catchOverflow(&err, "add index")
	return index.Add(delta), nil
}

// AccruedAmount returns floor((global - user) * share). The user index may
// never be ahead of the global one; if it is, or the product does not fit
// in 128 bits, ErrOverflow is returned.
func AccruedAmount(global, user sdkmath.LegacyDec, share sdkmath.Uint) (owed sdkmath.Uint, err error) {
	defer catchOverflow(&err, "accrued amount")
	if user.GT(global) {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: user index %s ahead of global index %s", ErrOverflow, user, global)
	}
	product := global.Sub(user).MulInt(sdkmath.NewIntFromBigInt(share.BigInt())).TruncateInt()
	owed = sdkmath.NewUintFromBigInt(product.BigInt())
	if err = CheckAmount(owed); err != nil {
		return sdkmath.ZeroUint(), err
	}
	return owed, nil
}
