// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/dcrd/internal/avalanche"
	"github.com/decred/dcrd/internal/avalanchesvc"
	"github.com/decred/dcrd/internal/progresslog"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to both standard output
// and the write-end pipe of an initialized log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// logRotator is initialized by initLogRotator and is used throughout the
// application to log to a rotating output file.
var logRotator *rotator.Rotator

// backendLog is the logging backend used to create all subsystem loggers.
var backendLog = slog.NewBackend(logWriter{})

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"AVCR": backendLog.Logger("AVCR"),
	"AVAL": backendLog.Logger("AVAL"),
	"AVSV": backendLog.Logger("AVSV"),
}

// avalanchedLog is the logger used by the top-level daemon code in this
// package (avalanchecore.go, config.go, signal.go, profiler.go).
var avalanchedLog = subsystemLoggers["AVCR"]

// peerProgressLog periodically logs peer manager progress.
var peerProgressLog = progresslog.New("Tracked", avalanchedLog)

func init() {
	avalanche.UseLogger(subsystemLoggers["AVAL"])
	avalanchesvc.UseLogger(subsystemLoggers["AVSV"])
}

// initLogRotator initializes the logging rotator to write to logFile.  This
// must be called before the package-level log variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// setLogLevel sets the logging level for the provided subsystem.  Invalid
// subsystems and invalid levels are ignored.
func setLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, ok := slog.LevelFromString(logLevel)
	if !ok {
		return
	}
	logger.SetLevel(level)
}

// setLogLevels sets the log level for all subsystems.
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}

// parseAndSetDebugLevels attempts to parse the specified debug level, which
// can be either a single log level applying to all subsystems, or a
// comma-separated list of subsystem/level pairs of the form subsys=level.
func parseAndSetDebugLevels(debugLevel string) error {
	levels := strings.Split(debugLevel, ",")
	if len(levels) == 1 && !strings.Contains(levels[0], "=") {
		_, ok := slog.LevelFromString(levels[0])
		if !ok {
			return fmt.Errorf("the specified debug level %q is invalid",
				levels[0])
		}
		setLogLevels(levels[0])
		return nil
	}

	for _, logLevelPair := range levels {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair %q", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := subsystemLoggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem %q is invalid",
				subsysID)
		}
		if _, ok := slog.LevelFromString(logLevel); !ok {
			return fmt.Errorf("the specified debug level %q is invalid",
				logLevel)
		}
		setLogLevel(subsysID, logLevel)
	}
	return nil
}
