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

package partitiontest

import (
	"hash/fnv"
	"os"
	"runtime"
	"strconv"
	"testing"
)

// PartitionTest checks if the current partition should run this test, and skips it if not.
// Partitioning is driven by PARTITION_TOTAL and PARTITION_ID; when either is missing or
// malformed every test runs.
func PartitionTest(t testing.TB) {
	total, ok := envInt("PARTITION_TOTAL")
	if !ok || total <= 0 {
		return
	}
	id, ok := envInt("PARTITION_ID")
	if !ok {
		return
	}
	_, file, _, _ := runtime.Caller(1)
	idx := int(testHash(file+":"+t.Name()) % uint64(total))
	if idx != id {
		t.Skipf("skipping due to partitioning, assigned to partition %d", idx)
	}
}

func envInt(name string) (int, bool) {
	v, found := os.LookupEnv(name)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func testHash(str string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(str))
	return h.Sum64()
}
