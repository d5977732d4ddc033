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
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/algorand/holder-rewards/config"
)

var (
	getParameterArg string
)

func init() {
	getCmd.Flags().StringVarP(&getParameterArg, "parameter", "p", "", "Parameter to query")
	getCmd.MarkFlagRequired("parameter")

	configCmd.AddCommand(getCmd, defaultsCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write the data directory configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Retrieve the current value for the specified parameter",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		dataDir := ensureSingleDataDir()
		cfg, err := config.LoadConfigFromDisk(dataDir)
		if err != nil && !os.IsNotExist(err) {
			reportErrorf("Error loading config file from '%s' - %s", dataDir, err)
		}

		val, err := getObjectProperty(cfg, getParameterArg)
		if err != nil {
			reportErrorf("Error retrieving property '%s' - %s", getParameterArg, err)
		}
		reportInfof("%v", val)
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Write the default configuration to the data directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		dataDir := ensureSingleDataDir()
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			reportErrorln(err)
		}
		cfg := config.GetDefaultLocal()
		if err := cfg.SaveToDisk(dataDir); err != nil {
			reportErrorln(err)
		}
		reportInfof(infoConfigWritten, dataDir)
	},
}

func getObjectProperty(object interface{}, property string) (ret interface{}, err error) {
	v := reflect.ValueOf(object)
	val := reflect.Indirect(v)
	f := val.FieldByName(property)

	if !f.IsValid() {
		return object, fmt.Errorf("unknown property named '%s'", property)
	}

	return f.Interface(), nil
}
