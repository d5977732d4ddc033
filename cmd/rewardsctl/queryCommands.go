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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/proxy"
	"github.com/algorand/holder-rewards/util/codecs"
)

var (
	querySenderArg string
	queryMsgArg    string
	userArg        string
)

func init() {
	canExecuteCmd.Flags().StringVarP(&querySenderArg, "sender", "s", "", "Address that would relay the message")
	canExecuteCmd.Flags().StringVarP(&queryMsgArg, "file", "f", "", "JSON file holding one bank or wasm message")
	canExecuteCmd.MarkFlagRequired("sender")
	canExecuteCmd.MarkFlagRequired("file")

	indexesCmd.Flags().StringVarP(&userArg, "user", "u", "", "User whose reward indexes to list")
	indexesCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(adminsCmd, canExecuteCmd, balancesCmd, versionCmd, indexesCmd)
}

var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Show the admin list and whether it can still change",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runQuery(proxy.QueryMsg{AdminList: &proxy.Empty{}})
	},
}

var canExecuteCmd = &cobra.Command{
	Use:   "can-execute",
	Short: "Check whether a sender may relay a message",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		var msg transactions.Msg
		if err := codecs.LoadObjectFromFile(queryMsgArg, &msg); err != nil {
			reportErrorf(errorReadFile, queryMsgArg, err)
		}
		runQuery(proxy.QueryMsg{CanExecute: &proxy.CanExecuteMsg{Sender: querySenderArg, Msg: msg}})
	},
}

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Show the actor's tracked balances and the pending claim messages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runQuery(proxy.QueryMsg{AssetsBalancesAndClaimRewardsMessages: &proxy.Empty{}})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the contract name and version recorded at instantiation",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runQuery(proxy.QueryMsg{ContractVersion: &proxy.Empty{}})
	},
}

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "List the reward index recorded for a user per asset",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		user, err := basics.ValidateAddress(userArg)
		if err != nil {
			reportErrorf(errorQuery, err)
		}
		withEnvironment(func(env *environment) {
			indexes, err := env.actor.Ledger().UserIndexes(user)
			if err != nil {
				reportErrorf(errorQuery, err)
			}
			if len(indexes) == 0 {
				reportInfof("no indexes recorded for %s", user)
				return
			}
			assets := maps.Keys(indexes)
			slices.Sort(assets)
			for _, asset := range assets {
				reportInfof("%s\t%s", asset, indexes[asset])
			}
		})
	},
}

func runQuery(msg proxy.QueryMsg) {
	withEnvironment(func(env *environment) {
		out, err := env.actor.Query(context.Background(), msg)
		if err != nil {
			reportErrorf(errorQuery, err)
		}
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, out, "", "  "); err != nil {
			reportErrorln(err)
		}
		fmt.Fprintln(os.Stdout, pretty.String())
	})
}
