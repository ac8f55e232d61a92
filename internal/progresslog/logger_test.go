// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/decred/dcrd/internal/avalanche"
	"github.com/decred/slog"
)

var (
	backendLog = slog.NewBackend(ioutil.Discard)
	testLog    = backendLog.Logger("TEST")
)

func TestLogStatsThrottles(t *testing.T) {
	l := New("Tracked", testLog)
	l.SetLastLogTime(time.Now())

	l.LogStats(avalanche.ManagerStats{ValidPeers: 1}, false)
	if l.lastStats.ValidPeers != 1 {
		t.Fatalf("lastStats not updated on throttled call: %+v", l.lastStats)
	}

	before := l.lastLogTime
	l.LogStats(avalanche.ManagerStats{ValidPeers: 2}, false)
	if !l.lastLogTime.Equal(before) {
		t.Fatal("lastLogTime should not advance on a throttled call")
	}
}

func TestLogStatsForced(t *testing.T) {
	l := New("Tracked", testLog)
	l.SetLastLogTime(time.Now())

	before := l.lastLogTime
	l.LogStats(avalanche.ManagerStats{ValidPeers: 3, BoundNodes: 5}, true)
	if !l.lastLogTime.After(before) && !l.lastLogTime.Equal(before) {
		t.Fatal("lastLogTime should advance on a forced call")
	}
	if l.lastStats.ValidPeers != 3 || l.lastStats.BoundNodes != 5 {
		t.Fatalf("lastStats = %+v, want {ValidPeers:3 BoundNodes:5 ...}", l.lastStats)
	}
}

func TestLogStatsAfterInterval(t *testing.T) {
	l := New("Tracked", testLog)
	l.SetLastLogTime(time.Now().Add(-11 * time.Second))

	l.LogStats(avalanche.ManagerStats{ValidPeers: 4}, false)
	if l.lastStats.ValidPeers != 4 {
		t.Fatalf("lastStats = %+v, want ValidPeers=4", l.lastStats)
	}
	if time.Since(l.lastLogTime) > time.Second {
		t.Fatal("lastLogTime should have been refreshed once the interval elapsed")
	}
}
