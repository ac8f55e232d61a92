// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/dcrd/internal/avalanche"
	"github.com/decred/slog"
)

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// PeerLogger provides periodic logging of the avalanche peer manager's
// bookkeeping counters, in the same "every 10 seconds unless forced"
// cadence used elsewhere in the codebase for chain-sync progress.
type PeerLogger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	lastLogTime time.Time
	lastStats   avalanche.ManagerStats
}

// New returns a new peer progress logger.
func New(progressAction string, logger slog.Logger) *PeerLogger {
	return &PeerLogger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogStats logs stats as an information message showing the delta in valid
// peers, bound nodes, and pool occupancy since the previous log, throttled
// to once every 10 seconds unless forceLog is set.
func (l *PeerLogger) LogStats(stats avalanche.ManagerStats, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < time.Second*10 {
		l.lastStats = stats
		return
	}

	deltaPeers := stats.ValidPeers - l.lastStats.ValidPeers
	deltaNodes := stats.BoundNodes - l.lastStats.BoundNodes

	l.subsystemLogger.Infof("%s %d %s (%+d), %d %s bound (%+d), %d pending, "+
		"%d conflicting, %d orphan, in the last %0.2fs",
		l.progressAction,
		stats.ValidPeers, pickNoun(stats.ValidPeers, "peer", "peers"), deltaPeers,
		stats.BoundNodes, pickNoun(stats.BoundNodes, "node", "nodes"), deltaNodes,
		stats.PendingNodes,
		stats.ConflictingProofs,
		stats.OrphanProofs,
		duration.Seconds())

	l.lastStats = stats
	l.lastLogTime = now
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *PeerLogger) SetLastLogTime(t time.Time) {
	l.Lock()
	l.lastLogTime = t
	l.Unlock()
}
