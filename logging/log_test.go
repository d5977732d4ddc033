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

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/holder-rewards/test/partitiontest"
)

func isJSON(s string) bool {
	var js map[string]interface{}
	return json.Unmarshal([]byte(s), &js) == nil
}

func TestFileOutputNewLogger(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)

	nl.Info("Should show up in New logger")
	a.Contains(buf.String(), "Should show up in New logger")
	a.Contains(buf.String(), "file=log_test.go")
}

func TestSetGetLevel(t *testing.T) {
	partitiontest.PartitionTest(t)

	nl := NewLogger()
	require.Equal(t, Info, nl.GetLevel())
	nl.SetLevel(Error)
	require.Equal(t, Error, nl.GetLevel())
	require.True(t, nl.IsLevelEnabled(Error))
	require.False(t, nl.IsLevelEnabled(Warn))
}

func TestSetLevelNewLogger(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)

	nl.Debug("hidden at info")
	a.Empty(buf.String())

	nl.SetLevel(Debug)
	nl.Debug("shown at debug")
	a.Contains(buf.String(), "shown at debug")

	a.Equal(Warn, Base().GetLevel())
}

func TestWithFieldsNewLogger(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)

	nl.WithFields(Fields{"action": "freeze", "sender": "alice"}).Info("admin list updated")
	a.Contains(buf.String(), "action=freeze")
	a.Contains(buf.String(), "sender=alice")

	buf.Reset()
	nl.With("asset", "native:uusd").Info("settled")
	a.Contains(buf.String(), "asset=\"native:uusd\"")
}

func TestSetJSONFormatter(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)
	nl.SetJSONFormatter()
	nl.WithFields(Fields{"user": "bob"}).Info("json")
	a.True(isJSON(strings.TrimSpace(buf.String())))
}

func TestOrBase(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, Base(), OrBase(nil))
	l := NewLogger()
	require.Equal(t, l, OrBase(l))
}
