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
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/proxy"
	"github.com/algorand/holder-rewards/util/codecs"
)

var (
	senderArg    string
	inputFileArg string
	adminsArg    []string
	applyArg     bool
)

func init() {
	for _, cmd := range []*cobra.Command{initCmd, freezeCmd, updateAdminsCmd, relayCmd, settleCmd} {
		cmd.Flags().StringVarP(&senderArg, "sender", "s", "", "Address the request is sent from")
		cmd.MarkFlagRequired("sender")
	}
	for _, cmd := range []*cobra.Command{initCmd, relayCmd, settleCmd} {
		cmd.Flags().StringVarP(&inputFileArg, "file", "f", "", "JSON file holding the request body")
		cmd.MarkFlagRequired("file")
	}
	for _, cmd := range []*cobra.Command{relayCmd, settleCmd} {
		cmd.Flags().BoolVar(&applyArg, "apply", true, "Apply the emitted messages to the local host bank")
	}
	updateAdminsCmd.Flags().StringSliceVar(&adminsArg, "admin", nil, "New admin address, repeatable")

	rootCmd.AddCommand(initCmd, freezeCmd, updateAdminsCmd, relayCmd, settleCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Instantiate the actor from an instantiate message",
	Long:  `Writes a default config file if the data directory has none, then instantiates the actor with the admins and asset configuration in the given file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		sender := parseSender(senderArg)
		var msg proxy.InstantiateMsg
		if err := codecs.LoadObjectFromFile(inputFileArg, &msg); err != nil {
			reportErrorf(errorReadFile, inputFileArg, err)
		}
		withEnvironment(func(env *environment) {
			if err := ensureConfigFile(env); err != nil {
				reportErrorf(errorOpenEnv, env.dir, err)
			}
			resp, err := env.actor.Instantiate(sender, msg)
			if err != nil {
				reportErrorf(errorExecute, err)
			}
			reportInfof(infoInstantiated, env.actor.Self())
			printResponse(resp, nil)
		})
	},
}

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Permanently freeze the admin list",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runExecute(proxy.ExecuteMsg{Freeze: &proxy.Empty{}}, false)
	},
}

var updateAdminsCmd = &cobra.Command{
	Use:   "update-admins",
	Short: "Replace the admin list",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		admins := adminsArg
		if admins == nil {
			admins = []string{}
		}
		runExecute(proxy.ExecuteMsg{UpdateAdmins: &proxy.UpdateAdminsMsg{Admins: admins}}, false)
	},
}

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Relay messages with the actor as sender",
	Long:  `Reads a JSON array of bank and wasm messages and relays them through the actor. Only admins may relay.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		var msgs []transactions.Msg
		if err := codecs.LoadObjectFromFile(inputFileArg, &msgs); err != nil {
			reportErrorf(errorReadFile, inputFileArg, err)
		}
		runExecute(proxy.ExecuteMsg{Execute: &proxy.RelayMsg{Msgs: msgs}}, applyArg)
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Settle one user's rewards after a share change",
	Long:  `Reads a handle_rewards body and settles the user's accrued rewards against the actor's current balances.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		var msg proxy.HandleRewardsMsg
		if err := codecs.LoadObjectFromFile(inputFileArg, &msg); err != nil {
			reportErrorf(errorReadFile, inputFileArg, err)
		}
		runExecute(proxy.ExecuteMsg{HandleRewards: &msg}, applyArg)
	},
}

func runExecute(msg proxy.ExecuteMsg, apply bool) {
	sender := parseSender(senderArg)
	withEnvironment(func(env *environment) {
		resp, unapplied, err := env.execute(context.Background(), sender, msg, apply)
		if errors.Is(err, errApplyFailed) {
			reportErrorf(errorApply, err)
		}
		if err != nil {
			reportErrorf(errorExecute, err)
		}
		printResponse(resp, unapplied)
	})
}

func printResponse(resp proxy.Response, unapplied []transactions.Msg) {
	if err := codecs.NewFormattedJSONEncoder(os.Stdout).Encode(resp); err != nil {
		reportErrorln(err)
	}
	for i, msg := range unapplied {
		reportWarnf(warnUnappliedMessage, i, msg)
	}
}

// ensureConfigFile writes the effective config when the data directory has
// no config file yet.
func ensureConfigFile(env *environment) error {
	path := env.configPath()
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return err
	}
	if err := env.cfg.SaveToDisk(env.dir); err != nil {
		return err
	}
	reportInfof(infoConfigWritten, path)
	return nil
}
