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

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/util/codecs"
	"github.com/algorand/holder-rewards/util/kvstore"
)

// ConfigFilename is the name of the config.json file where we store per-instance settings
const ConfigFilename = "config.json"

// StoreFilenamePrefix is the prefix of the actor store within the data directory
const StoreFilenamePrefix = "rewards"

// LockFilename guards a data directory against concurrent use
const LockFilename = "rewards.lock"

// Local holds the per-data-directory settings.
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	Version uint32

	// StoreBackend selects the util/kvstore implementation: pebble or badger
	StoreBackend string

	// BaseLoggerDebugLevel is the logrus level: 0 panic .. 5 debug
	BaseLoggerDebugLevel uint32

	// LogJSON switches log output to JSON
	LogJSON bool

	// ActorAddress is the address the actor holds balances under
	ActorAddress string

	// SettlementCallers may call handle_rewards. Empty lets anyone call it.
	SettlementCallers []string

	// MetricsEnabled turns on the prometheus endpoint of serve-metrics
	MetricsEnabled bool

	// MetricsAddress is the listen address of serve-metrics
	MetricsAddress string
}

var defaultLocal = Local{
	Version:              1,
	StoreBackend:         "pebble",
	BaseLoggerDebugLevel: 4,
	LogJSON:              false,
	ActorAddress:         "holderrewards",
	SettlementCallers:    nil,
	MetricsEnabled:       false,
	MetricsAddress:       "localhost:9120",
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file from the custom dir.  If the custom file
// cannot be loaded, the default config is returned (with the error from loading the
// custom file).
func LoadConfigFromDisk(custom string) (c Local, err error) {
	return loadConfigFromFile(filepath.Join(custom, ConfigFilename))
}

func loadConfigFromFile(configFile string) (c Local, err error) {
	c = GetDefaultLocal()
	c, err = mergeConfigFromFile(configFile, c)
	if err != nil {
		return
	}
	err = c.Validate()
	return
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	f, err := os.Open(configpath)
	if err != nil {
		return source, err
	}
	defer f.Close()

	err = loadConfig(f, &source)
	return source, err
}

func loadConfig(reader io.Reader, config *Local) error {
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	return dec.Decode(config)
}

// Validate checks the settings for values the actor cannot run with.
func (cfg Local) Validate() error {
	if !kvstore.Registered(cfg.StoreBackend) {
		return fmt.Errorf("unknown StoreBackend %q, want one of %v", cfg.StoreBackend, kvstore.Implementations())
	}
	if cfg.BaseLoggerDebugLevel > 5 {
		return fmt.Errorf("BaseLoggerDebugLevel %d out of range 0..5", cfg.BaseLoggerDebugLevel)
	}
	if _, err := basics.ValidateAddress(cfg.ActorAddress); err != nil {
		return fmt.Errorf("ActorAddress: %w", err)
	}
	if _, err := cfg.SettlementCallerAddresses(); err != nil {
		return err
	}
	return nil
}

// SettlementCallerAddresses returns the validated settlement allow-list.
func (cfg Local) SettlementCallerAddresses() ([]basics.Address, error) {
	callers, err := basics.ValidateAddresses(cfg.SettlementCallers)
	if err != nil {
		return nil, fmt.Errorf("SettlementCallers: %w", err)
	}
	return callers, nil
}

// StorePath returns the store location within the data directory.
func (cfg Local) StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFilenamePrefix)
}

// SaveToDisk writes the non-default Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	configpath := filepath.Join(root, ConfigFilename)
	filename := os.ExpandEnv(configpath)
	return cfg.SaveToFile(filename)
}

// SaveToFile saves the config to a specific filename, allowing overriding the default name
func (cfg Local) SaveToFile(filename string) error {
	var alwaysInclude []string
	alwaysInclude = append(alwaysInclude, "Version")
	return codecs.SaveNonDefaultValuesToFile(filename, cfg, defaultLocal, alwaysInclude, true)
}
