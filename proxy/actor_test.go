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

package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/algorand/holder-rewards/data/basics"
	"github.com/algorand/holder-rewards/data/bookkeeping"
	"github.com/algorand/holder-rewards/data/transactions"
	"github.com/algorand/holder-rewards/host"
	"github.com/algorand/holder-rewards/ledger"
	"github.com/algorand/holder-rewards/logging"
	"github.com/algorand/holder-rewards/rewards"
	"github.com/algorand/holder-rewards/test/partitiontest"
	"github.com/algorand/holder-rewards/util/kvstore"
)

const self basics.Address = "holderrewards"

var (
	uusd  = basics.NativeToken("uusd")
	uluna = basics.NativeToken("uluna")
	bluna = basics.Token("bluna")
)

var uintComparer = cmp.Comparer(func(a, b sdkmath.Uint) bool { return a.Equal(b) })

type testEnv struct {
	actor *Actor
	bank  *host.Bank
}

func makeTestEnv(t *testing.T, callers ...basics.Address) testEnv {
	store, err := kvstore.NewKVStore("pebble", t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := logging.TestingLog(t)
	bank := host.MakeBank(store, log)
	actor, err := MakeActor(Config{Log: log, Store: store, Querier: bank, Self: self, SettlementCallers: callers})
	require.NoError(t, err)
	return testEnv{actor: actor, bank: bank}
}

func instantiateMsg(admins []string, mutable bool, assets ...basics.AssetInfo) InstantiateMsg {
	return InstantiateMsg{Admins: admins, Mutable: mutable, Info: bookkeeping.Info{AssetInfos: assets}}
}

func amount(v uint64) sdkmath.Uint {
	return sdkmath.NewUint(v)
}

func TestMakeActor(t *testing.T) {
	partitiontest.PartitionTest(t)

	store, err := kvstore.NewKVStore("pebble", t.TempDir(), true)
	require.NoError(t, err)
	defer store.Close()
	bank := host.MakeBank(store, nil)

	_, err = MakeActor(Config{Store: store, Querier: bank, Self: "Self"})
	require.ErrorIs(t, err, basics.ErrInvalidAddress)
	_, err = MakeActor(Config{Store: store, Querier: bank, Self: self, SettlementCallers: []basics.Address{"A"}})
	require.ErrorIs(t, err, basics.ErrInvalidAddress)
	_, err = MakeActor(Config{Querier: bank, Self: self})
	require.Error(t, err)

	a, err := MakeActor(Config{Store: store, Querier: bank, Self: self})
	require.NoError(t, err)
	require.Equal(t, self, a.Self())
}

func TestInstantiate(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t)
	a := env.actor

	_, err := a.AdminList()
	require.ErrorIs(t, err, ErrNotInstantiated)

	_, err = a.Instantiate("creator", instantiateMsg([]string{"alice"}, true, uusd, uusd))
	require.ErrorIs(t, err, bookkeeping.ErrDuplicateAssetInfo)
	_, err = a.AdminList()
	require.ErrorIs(t, err, ErrNotInstantiated)

	_, err = a.Instantiate("creator", instantiateMsg([]string{"Alice"}, true, uusd))
	require.ErrorIs(t, err, basics.ErrInvalidAddress)

	_, err = a.Instantiate("creator", instantiateMsg([]string{"alice"}, true, uusd, uluna))
	require.NoError(t, err)

	resp, err := a.AdminList()
	require.NoError(t, err)
	require.Equal(t, AdminListResponse{Admins: []string{"alice"}, Mutable: true}, resp)

	v, err := a.ContractVersion()
	require.NoError(t, err)
	require.Equal(t, bookkeeping.CurrentVersion, v)

	_, err = a.Instantiate("creator", instantiateMsg([]string{"bob"}, true, uusd))
	require.ErrorIs(t, err, ErrAlreadyInstantiated)
}

func TestAdminScenario(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := makeTestEnv(t).actor
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice"}, true))
	require.NoError(t, err)

	resp, err := a.UpdateAdmins("alice", []string{"bob"})
	require.NoError(t, err)
	action, ok := resp.Attribute("action")
	require.True(t, ok)
	require.Equal(t, ActionUpdateAdmins, action)

	admins, err := a.AdminList()
	require.NoError(t, err)
	require.Equal(t, []string{"bob"}, admins.Admins)

	_, err = a.Freeze("alice")
	require.ErrorIs(t, err, ErrUnauthorized)

	resp, err = a.Freeze("bob")
	require.NoError(t, err)
	action, _ = resp.Attribute("action")
	require.Equal(t, ActionFreeze, action)

	admins, err = a.AdminList()
	require.NoError(t, err)
	require.Equal(t, AdminListResponse{Admins: []string{"bob"}, Mutable: false}, admins)
}

func TestFreezeIsFinal(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := makeTestEnv(t).actor
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice", "bob"}, true))
	require.NoError(t, err)

	_, err = a.Freeze("alice")
	require.NoError(t, err)

	for _, sender := range []basics.Address{"alice", "bob", "carl"} {
		_, err = a.Freeze(sender)
		require.ErrorIs(t, err, ErrUnauthorized)
		_, err = a.UpdateAdmins(sender, []string{"carl"})
		require.ErrorIs(t, err, ErrUnauthorized)
	}

	admins, err := a.AdminList()
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, admins.Admins)
	require.False(t, admins.Mutable)
}

func TestUpdateAdminsValidation(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := makeTestEnv(t).actor
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice"}, true))
	require.NoError(t, err)

	_, err = a.UpdateAdmins("alice", []string{"bob", "Carl"})
	require.ErrorIs(t, err, basics.ErrInvalidAddress)
	_, err = a.UpdateAdmins("bob", []string{"bob"})
	require.ErrorIs(t, err, ErrUnauthorized)

	admins, err := a.AdminList()
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, admins.Admins)
}

func TestRelay(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := makeTestEnv(t).actor
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice"}, false))
	require.NoError(t, err)

	send, err := transactions.TransferMsg(basics.Asset{Info: uusd, Amount: amount(5)}, "carl")
	require.NoError(t, err)
	claim, err := transactions.ClaimRewardsMsg("anchorrewards")
	require.NoError(t, err)
	msgs := []transactions.Msg{send, claim}

	_, err = a.Relay("bob", msgs)
	require.ErrorIs(t, err, ErrUnauthorized)

	// relaying is allowed on a frozen list
	resp, err := a.Relay("alice", msgs)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(msgs, resp.Messages, uintComparer))
	action, _ := resp.Attribute("action")
	require.Equal(t, ActionExecute, action)

	_, err = a.Relay("alice", []transactions.Msg{{}})
	require.ErrorIs(t, err, transactions.ErrMalformedMsg)
}

func TestCanExecute(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := makeTestEnv(t).actor
	_, err := a.CanExecute("alice", transactions.Msg{})
	require.ErrorIs(t, err, ErrNotInstantiated)

	_, err = a.Instantiate("creator", instantiateMsg([]string{"alice", "bob"}, true))
	require.NoError(t, err)

	claim, err := transactions.ClaimRewardsMsg("anchorrewards")
	require.NoError(t, err)
	for _, msg := range []transactions.Msg{claim, {}} {
		for sender, want := range map[string]bool{"alice": true, "bob": true, "carl": false, "Alice": false, "": false} {
			can, err := a.CanExecute(sender, msg)
			require.NoError(t, err)
			require.Equal(t, want, can, sender)
		}
	}
}

func TestBalancesAndClaimMessages(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t)
	a := env.actor
	ctx := context.Background()

	resp, err := a.BalancesAndClaimMessages(ctx)
	require.NoError(t, err)
	require.Empty(t, resp.Balances)
	require.Empty(t, resp.Messages)

	msg := instantiateMsg([]string{"alice"}, true, uusd, bluna)
	msg.Info.Rewarders = []bookkeeping.Rewarder{{Address: "AnchorRewards", Handler: bookkeeping.AnchorBluna}}
	_, err = a.Instantiate("creator", msg)
	require.NoError(t, err)
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: bluna, Amount: amount(12)}))

	resp, err = a.BalancesAndClaimMessages(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Balances, 2)
	require.Equal(t, uusd, resp.Balances[0].Info)
	require.True(t, resp.Balances[0].Amount.IsZero())
	require.Equal(t, bluna, resp.Balances[1].Info)
	require.Equal(t, "12", resp.Balances[1].Amount.String())

	claim, err := transactions.ClaimRewardsMsg("anchorrewards")
	require.NoError(t, err)
	require.Equal(t, []transactions.Msg{claim}, resp.Messages)
}

func TestHandleRewardsEndToEnd(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t, "pool")
	a := env.actor
	ctx := context.Background()
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice"}, true, uusd, bluna))
	require.NoError(t, err)

	prev, err := a.BalancesAndClaimMessages(ctx)
	require.NoError(t, err)

	// yield arrives while alice holds 1 of 4 shares and bob 3
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: uusd, Amount: amount(400)}))
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: bluna, Amount: amount(80)}))

	req := rewardsRequest(prev.Balances, 1, 4, "alice")
	_, err = a.HandleRewards(ctx, "mallory", req)
	require.ErrorIs(t, err, ErrUnauthorized)

	resp, err := a.HandleRewards(ctx, "pool", req)
	require.NoError(t, err)
	action, _ := resp.Attribute("action")
	require.Equal(t, ActionHandleRewards, action)
	require.Len(t, resp.Messages, 2)

	unapplied, err := env.bank.Apply(self, resp.Messages)
	require.NoError(t, err)
	require.Empty(t, unapplied)
	requireBalance(t, env.bank, "alice", uusd, 100)
	requireBalance(t, env.bank, "alice", bluna, 20)

	// bob settles later; the balance already reflects alice's payout
	prev, err = a.BalancesAndClaimMessages(ctx)
	require.NoError(t, err)
	resp, err = a.HandleRewards(ctx, "pool", rewardsRequest(prev.Balances, 3, 4, "bob"))
	require.NoError(t, err)
	_, err = env.bank.Apply(self, resp.Messages)
	require.NoError(t, err)
	requireBalance(t, env.bank, "bob", uusd, 300)
	requireBalance(t, env.bank, "bob", bluna, 60)
	requireBalance(t, env.bank, self, uusd, 0)
	requireBalance(t, env.bank, self, bluna, 0)

	// settling again pays nothing
	resp, err = a.HandleRewards(ctx, "pool", rewardsRequest([]basics.Asset{{Info: uusd, Amount: amount(0)}, {Info: bluna, Amount: amount(0)}}, 3, 4, "bob"))
	require.NoError(t, err)
	require.Empty(t, resp.Messages)
}

func TestHandleRewardsFailureCommitsNothing(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t)
	a := env.actor
	ctx := context.Background()
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice"}, true, uusd, bluna))
	require.NoError(t, err)
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: uusd, Amount: amount(400)}))
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: bluna, Amount: amount(80)}))

	// uusd settles fine, bluna overflows: neither index may move
	req := rewardsRequest([]basics.Asset{{Info: uusd, Amount: amount(400)}, {Info: bluna, Amount: amount(0)}}, 1, 1, "alice")
	req.OldUserShare = basics.MaxAmount
	_, err = a.HandleRewards(ctx, "anyone", req)
	require.ErrorIs(t, err, basics.ErrOverflow)

	indexes, err := a.Ledger().UserIndexes("alice")
	require.NoError(t, err)
	require.Empty(t, indexes)
}

func TestExecuteJSON(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t)
	a := env.actor
	ctx := context.Background()

	var inst InstantiateMsg
	require.NoError(t, json.Unmarshal([]byte(`{
		"admins": ["alice"],
		"mutable": true,
		"info": {"rewarders": [], "asset_infos": [{"native_token": {"denom": "uusd"}}]}
	}`), &inst))
	_, err := a.Instantiate("creator", inst)
	require.NoError(t, err)
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: uusd, Amount: amount(50)}))

	var msg ExecuteMsg
	require.NoError(t, json.Unmarshal([]byte(`{"handle_rewards": {
		"previous_assets_balances": [{"info": {"native_token": {"denom": "uusd"}}, "amount": "0"}],
		"old_user_share": "10",
		"old_total_share": "10",
		"user": "alice",
		"receiver": "carl"
	}}`), &msg))
	resp, err := a.Execute(ctx, "pool", msg)
	require.NoError(t, err)
	want, err := transactions.TransferMsg(basics.Asset{Info: uusd, Amount: amount(50)}, "carl")
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]transactions.Msg{want}, resp.Messages, uintComparer))

	require.NoError(t, json.Unmarshal([]byte(`{"update_admins": {"admins": ["bob"]}}`), &msg))
	_, err = a.Execute(ctx, "alice", msg)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(`{"freeze": {}}`), &msg))
	_, err = a.Execute(ctx, "bob", msg)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(`{"execute": {"msgs": []}}`), &msg))
	resp, err = a.Execute(ctx, "bob", msg)
	require.NoError(t, err)
	require.Empty(t, resp.Messages)

	_, err = a.Execute(ctx, "bob", ExecuteMsg{})
	require.ErrorIs(t, err, ErrUnknownMsg)

	require.NoError(t, json.Unmarshal([]byte(`{"handle_rewards": {"previous_assets_balances": [], "old_user_share": "x", "old_total_share": "1", "user": "alice"}}`), &msg))
	_, err = a.Execute(ctx, "pool", msg)
	require.Error(t, err)

	require.ErrorIs(t, json.Unmarshal([]byte(`{"burn": {}}`), &msg), ErrUnknownMsg)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"freeze": {}, "update_admins": {"admins": []}}`), &msg), ErrUnknownMsg)
	require.ErrorIs(t, json.Unmarshal([]byte(`{}`), &msg), ErrUnknownMsg)
}

func TestQueryJSON(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t)
	a := env.actor
	ctx := context.Background()

	query := func(raw string) string {
		var q QueryMsg
		require.NoError(t, json.Unmarshal([]byte(raw), &q))
		out, err := a.Query(ctx, q)
		require.NoError(t, err)
		return string(out)
	}

	require.JSONEq(t, `{"balances":[],"messages":[]}`, query(`{"assets_balances_and_claim_rewards_messages":{}}`))

	_, err := a.Instantiate("creator", instantiateMsg([]string{"bob", "alice", "bob"}, true, uusd))
	require.NoError(t, err)

	require.JSONEq(t, `{"admins":["bob","alice","bob"],"mutable":true}`, query(`{"admin_list":{}}`))
	require.JSONEq(t, `{"can_execute":true}`, query(`{"can_execute":{"sender":"alice","msg":{"bank":{"send":{"to_address":"carl","amount":[]}}}}}`))
	require.JSONEq(t, `{"can_execute":false}`, query(`{"can_execute":{"sender":"carl","msg":{"bank":{"send":{"to_address":"carl","amount":[]}}}}}`))
	require.JSONEq(t, `{"contract":"holder-rewards","version":"1.0.0"}`, query(`{"contract_version":{}}`))
	require.JSONEq(t, `{"balances":[{"info":{"native_token":{"denom":"uusd"}},"amount":"0"}],"messages":[]}`,
		query(`{"assets_balances_and_claim_rewards_messages":{}}`))

	var q QueryMsg
	require.ErrorIs(t, json.Unmarshal([]byte(`{"admin_list":{},"contract_version":{}}`), &q), ErrUnknownMsg)
	_, err = a.Query(ctx, QueryMsg{})
	require.ErrorIs(t, err, ErrUnknownMsg)
}

func TestAdminListResponseCanonical(t *testing.T) {
	partitiontest.PartitionTest(t)

	r1 := AdminListResponse{Admins: []string{"admin1", "admin2"}, Mutable: true}
	r2 := AdminListResponse{Admins: []string{"admin2", "admin1", "admin2"}, Mutable: true}
	require.NotEqual(t, r1, r2)
	require.Equal(t, r1.Canonical(), r2.Canonical())
}

func TestConcurrentSettlements(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t)
	a := env.actor
	ctx := context.Background()
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice"}, true, uusd))
	require.NoError(t, err)
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: uusd, Amount: amount(1000)}))

	// ten users of equal share settle the same window concurrently
	users := []basics.Address{"user0", "user1", "user2", "user3", "user4", "user5", "user6", "user7", "user8", "user9"}
	var wg sync.WaitGroup
	errs := make([]error, len(users))
	for i, u := range users {
		wg.Add(1)
		go func(i int, u basics.Address) {
			defer wg.Done()
			bal := []basics.Asset{{Info: uusd, Amount: amount(1000)}}
			if i == 0 {
				bal[0].Amount = amount(0)
			}
			_, errs[i] = a.HandleRewards(ctx, "pool", rewardsRequest(bal, 1, 10, u))
		}(i, u)
	}
	wg.Wait()

	for i := range users {
		require.NoError(t, errs[i])
	}
	idx, err := a.Ledger().UserIndexes("user0")
	require.NoError(t, err)
	require.Equal(t, "100.000000000000000000", idx[uusd.String()].String())
}

var errCommitFailed = errors.New("commit failed")

// flakyStore fails batch commits while failCommits is set.
type flakyStore struct {
	kvstore.KVStore
	failCommits atomic.Bool
}

func (s *flakyStore) NewBatch() kvstore.BatchWriter {
	return flakyBatch{BatchWriter: s.KVStore.NewBatch(), store: s}
}

type flakyBatch struct {
	kvstore.BatchWriter
	store *flakyStore
}

func (b flakyBatch) Commit() error {
	if b.store.failCommits.Load() {
		b.Cancel()
		return errCommitFailed
	}
	return b.BatchWriter.Commit()
}

func TestHandleRewardsMetricsFollowCommit(t *testing.T) {
	partitiontest.PartitionTest(t)

	inner, err := kvstore.NewKVStore("pebble", t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() { inner.Close() })
	store := &flakyStore{KVStore: inner}

	log := logging.TestingLog(t)
	bank := host.MakeBank(store, log)
	a, err := MakeActor(Config{Log: log, Store: store, Querier: bank, Self: self})
	require.NoError(t, err)
	ctx := context.Background()
	_, err = a.Instantiate("creator", instantiateMsg([]string{"alice"}, true, uusd))
	require.NoError(t, err)
	require.NoError(t, bank.Mint(self, basics.Asset{Info: uusd, Amount: amount(300)}))

	settled := func() float64 { return testutil.ToFloat64(rewards.SettlementsTotal.WithLabelValues("settled")) }
	failed := func() float64 { return testutil.ToFloat64(rewards.SettlementsTotal.WithLabelValues("error")) }
	transfers := func() float64 { return testutil.ToFloat64(rewards.TransfersTotal.WithLabelValues(uusd.String())) }
	gauge := func() float64 { return testutil.ToFloat64(rewards.GlobalIndex.WithLabelValues(uusd.String())) }
	settledBefore, failedBefore, transfersBefore, gaugeBefore := settled(), failed(), transfers(), gauge()

	req := rewardsRequest([]basics.Asset{{Info: uusd, Amount: amount(0)}}, 1, 3, "alice")
	store.failCommits.Store(true)
	_, err = a.HandleRewards(ctx, "pool", req)
	require.ErrorIs(t, err, errCommitFailed)

	require.Equal(t, settledBefore, settled())
	require.Equal(t, failedBefore+1, failed())
	require.Equal(t, transfersBefore, transfers())
	require.Equal(t, gaugeBefore, gauge())
	idx, err := ledger.GlobalIndex(a.Ledger(), uusd)
	require.NoError(t, err)
	require.True(t, idx.IsZero())

	store.failCommits.Store(false)
	resp, err := a.HandleRewards(ctx, "pool", req)
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	require.Equal(t, settledBefore+1, settled())
	require.Equal(t, failedBefore+1, failed())
	require.Equal(t, transfersBefore+1, transfers())
	require.Equal(t, float64(100), gauge())
}

func TestHandleRewardsZeroTotalShareCommitsNothing(t *testing.T) {
	partitiontest.PartitionTest(t)

	env := makeTestEnv(t)
	a := env.actor
	ctx := context.Background()
	_, err := a.Instantiate("creator", instantiateMsg([]string{"alice"}, true, uusd))
	require.NoError(t, err)
	require.NoError(t, env.bank.Mint(self, basics.Asset{Info: uusd, Amount: amount(50)}))

	_, err = a.HandleRewards(ctx, "pool", rewardsRequest([]basics.Asset{{Info: uusd, Amount: amount(0)}}, 0, 0, "alice"))
	require.ErrorIs(t, err, basics.ErrZeroTotalShare)
	indexes, err := a.Ledger().UserIndexes("alice")
	require.NoError(t, err)
	require.Empty(t, indexes)

	// the reward is still there to be attributed by the next settlement
	resp, err := a.HandleRewards(ctx, "pool", rewardsRequest([]basics.Asset{{Info: uusd, Amount: amount(0)}}, 10, 10, "alice"))
	require.NoError(t, err)
	_, err = env.bank.Apply(self, resp.Messages)
	require.NoError(t, err)
	requireBalance(t, env.bank, "alice", uusd, 50)
}

func rewardsRequest(prev []basics.Asset, userShare, totalShare uint64, user basics.Address) rewards.SettleRequest {
	return rewards.SettleRequest{
		PreviousBalances: prev,
		OldUserShare:     amount(userShare),
		OldTotalShare:    amount(totalShare),
		User:             user,
	}
}

func requireBalance(t *testing.T, b *host.Bank, holder basics.Address, ai basics.AssetInfo, want uint64) {
	bal, err := b.QueryBalance(context.Background(), holder, ai)
	require.NoError(t, err)
	require.Equal(t, amount(want).String(), bal.String(), "%s %s", holder, ai)
}
