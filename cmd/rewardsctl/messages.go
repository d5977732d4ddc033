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

const (
	errorNoDataDirectory     = "Data directory not specified.  Please use -d or set $HOLDER_REWARDS_DATA in your environment."
	errorOneDataDirSupported = "Only one data directory can be specified for this command."
	errorDataDirLocked       = "Data directory %s is in use by another rewardsctl process."
	errorOpenEnv             = "Cannot open data directory %s: %s"
	errorReadFile            = "Cannot read %s: %s"
	errorBadSender           = "Invalid --sender: %s"
	errorExecute             = "Execute failed: %s"
	errorQuery               = "Query failed: %s"
	errorApply               = "Host bank rejected the emitted messages: %s"

	infoConfigWritten    = "Wrote default configuration to %s"
	infoInstantiated     = "Instantiated holder rewards actor %s"
	warnUnappliedMessage = "message %d is not handled by the local bank: %s"
)
