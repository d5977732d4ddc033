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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/transactions"
)

// Settlement results.
const (
	resultSettled = "settled"
	resultNoop    = "noop"
	resultError   = "error"
)

var (
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holder_rewards_settlements_total",
			Help: "Total number of reward settlements by result",
		},
		[]string{"result"},
	)

	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holder_rewards_transfers_total",
			Help: "Total number of payout transfers emitted by asset",
		},
		[]string{"asset"},
	)

	ClampedRewardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holder_rewards_clamped_rewards_total",
			Help: "Settlements where the balance had decreased and the reward was clamped to zero",
		},
		[]string{"asset"},
	)

	GlobalIndex = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "holder_rewards_global_index",
			Help: "Latest global reward index by asset, as committed by the last settlement",
		},
		[]string{"asset"},
	)

	ClaimMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "holder_rewards_claim_messages_total",
			Help: "Total number of external claim messages built",
		},
	)
)

// Observe records a settlement whose writes have been committed.
func (s Settlement) Observe() {
	if s.noop {
		SettlementsTotal.WithLabelValues(resultNoop).Inc()
		return
	}
	SettlementsTotal.WithLabelValues(resultSettled).Inc()
	for _, asset := range s.Clamped {
		ClampedRewardsTotal.WithLabelValues(asset).Inc()
	}
	for asset, idx := range s.Indexes {
		if f, err := idx.Float64(); err == nil {
			GlobalIndex.WithLabelValues(asset).Set(f)
		}
	}
	for _, msg := range s.Msgs {
		TransfersTotal.WithLabelValues(transferAsset(msg)).Inc()
	}
}

// ObserveFailure counts a settlement that failed or was never committed.
func ObserveFailure() {
	SettlementsTotal.WithLabelValues(resultError).Inc()
}

func transferAsset(msg transactions.Msg) string {
	switch {
	case msg.Bank != nil && len(msg.Bank.Amount) > 0:
		return basics.NativeToken(msg.Bank.Amount[0].Denom).String()
	case msg.Wasm != nil:
		return basics.Token(msg.Wasm.ContractAddr).String()
	}
	return "unknown"
}
