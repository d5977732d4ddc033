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
	"fmt"

	"github.com/algorand/holder-rewards/data/bookkeeping"
	"github.com/algorand/holder-rewards/data/transactions"
)

// BuildClaimMessages returns, for every configured rewarder, the message
// that makes it release pending rewards into the actor's own balance.
func BuildClaimMessages(rewarders []bookkeeping.Rewarder) ([]transactions.Msg, error) {
	msgs := make([]transactions.Msg, 0, len(rewarders))
	for _, rw := range rewarders {
		msg, err := claimMessage(rw)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	ClaimMessagesTotal.Add(float64(len(msgs)))
	return msgs, nil
}

func claimMessage(rw bookkeeping.Rewarder) (transactions.Msg, error) {
	switch rw.Handler {
	case bookkeeping.AnchorBluna:
		return transactions.ClaimRewardsMsg(rw.Address)
	default:
		return transactions.Msg{}, fmt.Errorf("%w: %q", bookkeeping.ErrUnknownHandler, rw.Handler)
	}
}
