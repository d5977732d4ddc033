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

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/algorand/holder-rewards/data/basics"
)

var (
	holderArg string
	assetArg  string
	amountArg string
)

func init() {
	for _, cmd := range []*cobra.Command{fundCmd, balanceCmd} {
		cmd.Flags().StringVar(&holderArg, "holder", "", "Holder address, defaults to the actor itself")
		cmd.Flags().StringVar(&assetArg, "asset", "", "Asset as native:<denom> or token:<contract>")
		cmd.MarkFlagRequired("asset")
	}
	fundCmd.Flags().StringVar(&amountArg, "amount", "", "Amount to mint")
	fundCmd.MarkFlagRequired("amount")

	bankCmd.AddCommand(fundCmd, balanceCmd)
	rootCmd.AddCommand(bankCmd)
}

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and fund balances in the local host bank",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Mint an amount of an asset to a holder, simulating reward accrual",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ai, err := basics.ParseAssetInfo(assetArg)
		if err != nil {
			reportErrorln(err)
		}
		amount, err := basics.ParseAmount(amountArg)
		if err != nil {
			reportErrorln(err)
		}
		withEnvironment(func(env *environment) {
			holder := bankHolder(env)
			if err := env.bank.Mint(holder, basics.Asset{Info: ai, Amount: amount}); err != nil {
				reportErrorln(err)
			}
			reportInfof("minted %s %s to %s", basics.AmountString(amount), ai, holder)
		})
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show a holder's balance of an asset",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ai, err := basics.ParseAssetInfo(assetArg)
		if err != nil {
			reportErrorln(err)
		}
		withEnvironment(func(env *environment) {
			balance, err := env.bank.QueryBalance(context.Background(), bankHolder(env), ai)
			if err != nil {
				reportErrorln(err)
			}
			reportInfoln(basics.AmountString(balance))
		})
	},
}

func bankHolder(env *environment) basics.Address {
	if holderArg == "" {
		return env.actor.Self()
	}
	return parseSender(holderArg)
}
