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
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/algorand/holder-rewards/config"
	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/host"
	"github.com/algorand/holder-rewards/logging"
	"github.com/algorand/holder-rewards/proxy"
	"github.com/algorand/holder-rewards/util/kvstore"
)

var errDataDirLocked = errors.New("data directory locked")

// environment is an opened data directory: its config, lock, store, host
// bank and the actor served from it.
type environment struct {
	dir   string
	cfg   config.Local
	log   logging.Logger
	lock  *flock.Flock
	store kvstore.KVStore
	bank  *host.Bank
	actor *proxy.Actor
}

func openEnvironment(dir string) (*environment, error) {
	absolutePath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(absolutePath, 0700); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfigFromDisk(absolutePath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logging.NewLogger()
	log.SetLevel(logging.Level(cfg.BaseLoggerDebugLevel))
	if cfg.LogJSON {
		log.SetJSONFormatter()
	}
	log = log.With("datadir", absolutePath)

	fileLock := flock.New(filepath.Join(absolutePath, config.LockFilename))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", config.LockFilename, err)
	}
	if !locked {
		return nil, errDataDirLocked
	}

	env := &environment{dir: absolutePath, cfg: cfg, log: log, lock: fileLock}
	env.store, err = kvstore.NewKVStore(cfg.StoreBackend, cfg.StorePath(absolutePath), false)
	if err != nil {
		fileLock.Unlock()
		return nil, err
	}
	env.bank = host.MakeBank(env.store, log)

	callers, err := cfg.SettlementCallerAddresses()
	if err != nil {
		env.Close()
		return nil, err
	}
	env.actor, err = proxy.MakeActor(proxy.Config{
		Log:               log,
		Store:             env.store,
		Querier:           env.bank,
		Self:              basics.Address(cfg.ActorAddress),
		SettlementCallers: callers,
	})
	if err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}

// Close releases the store and the directory lock.
func (env *environment) Close() error {
	err := env.store.Close()
	if uerr := env.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}

// execute runs msg against the actor and, when apply is set, hands the
// emitted messages to the host bank with the actor as sender. Messages the
// bank cannot interpret are returned.
func (env *environment) execute(ctx context.Context, sender basics.Address, msg proxy.ExecuteMsg, apply bool) (proxy.Response, []transactions.Msg, error) {
	resp, err := env.actor.Execute(ctx, sender, msg)
	if err != nil {
		return resp, nil, err
	}
	if !apply || len(resp.Messages) == 0 {
		return resp, nil, nil
	}
	unapplied, err := env.bank.Apply(env.actor.Self(), resp.Messages)
	if err != nil {
		return resp, nil, fmt.Errorf("%w: %s", errApplyFailed, err)
	}
	return resp, unapplied, nil
}

var errApplyFailed = errors.New("apply failed")

// withEnvironment opens the single data directory, runs action and closes
// it again, turning failures into exit errors.
func withEnvironment(action func(env *environment)) {
	dir := ensureSingleDataDir()
	env, err := openEnvironment(dir)
	if errors.Is(err, errDataDirLocked) {
		reportErrorf(errorDataDirLocked, dir)
	}
	if err != nil {
		reportErrorf(errorOpenEnv, dir, err)
	}
	defer func() {
		if err := env.Close(); err != nil {
			reportWarnf("closing %s: %s", dir, err)
		}
	}()
	action(env)
}

func parseSender(sender string) basics.Address {
	addr, err := basics.ValidateAddress(sender)
	if err != nil {
		reportErrorf(errorBadSender, err)
	}
	return addr
}

func (env *environment) configPath() string {
	return filepath.Join(env.dir, config.ConfigFilename)
}
