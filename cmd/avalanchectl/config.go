// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"

	flags "github.com/jessevdk/go-flags"

	"github.com/decred/dcrd/sampleconfig"
)

const (
	defaultConfigFilename = "avalanchectl.conf"
	defaultRPCServer      = "localhost"

	mainnetRPCPort = "9586"
	testnetRPCPort = "19586"
	simnetRPCPort  = "19585"
)

var defaultConfigFile = filepath.Join(appDataDir("avalanchectl", false), defaultConfigFilename)

// config defines the configuration options for avalanchectl.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`

	TestNet bool `long:"testnet" description:"Connect to testnet"`
	SimNet  bool `long:"simnet" description:"Connect to the simulation test network"`

	RPCUser   string `short:"u" long:"rpcuser" description:"RPC username"`
	RPCPass   string `short:"P" long:"rpcpass" description:"RPC password"`
	RPCServer string `long:"rpcserver" description:"RPC server to connect to"`
}

// appDataDir returns an operating system specific directory to be used for
// storing application data.
func appDataDir(appName string, roaming bool) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appName)
		}
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", appName)
	case "plan9":
		return filepath.Join(homeDir, appName)
	default:
		return filepath.Join(homeDir, "."+appName)
	}
	return "."
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func createDefaultConfigFile(destPath string) error {
	if fileExists(destPath) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0700); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(sampleconfig.Avalanchectl()), 0600)
}

// loadConfig parses command line options together with the config file,
// with command line options taking precedence.
func loadConfig() (*config, []string, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		RPCServer:  defaultRPCServer,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := preParser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}
	if preCfg.ConfigFile != "" {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	if err := createDefaultConfigFile(cfg.ConfigFile); err != nil {
		fmt.Fprintf(os.Stderr, "avalanchectl: warning: %v\n", err)
	}

	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, nil, err
		}
	}

	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if cfg.TestNet && cfg.SimNet {
		return nil, nil, errors.New("avalanchectl: testnet and simnet cannot be used together")
	}

	rpcPort := mainnetRPCPort
	switch {
	case cfg.TestNet:
		rpcPort = testnetRPCPort
	case cfg.SimNet:
		rpcPort = simnetRPCPort
	}
	if _, _, err := net.SplitHostPort(cfg.RPCServer); err != nil {
		cfg.RPCServer = net.JoinHostPort(cfg.RPCServer, rpcPort)
	}

	return &cfg, remainingArgs, nil
}
