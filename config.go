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
	"strconv"
	"strings"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/decred/dcrd/internal/version"
	"github.com/decred/dcrd/sampleconfig"
)

const (
	defaultConfigFilename = "avalanched.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "avalanched.log"
	defaultRPCMaxClients  = 10

	defaultConflictCooldown = 10 * time.Second
	defaultMaxBlacklist     = 100000

	mainnetRPCPort = "9586"
	testnetRPCPort = "19586"
	simnetRPCPort  = "19585"
)

var (
	defaultHomeDir    = appDataDir("avalanched", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for avalanched.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir     string `long:"appdata" description:"Application data directory for logs"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	TestNet bool `long:"testnet" description:"Use the test network"`
	SimNet  bool `long:"simnet" description:"Use the simulation test network"`

	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- Specify sub-system name to override the global log level"`
	Profile    string `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65535"`

	DisableRPC    bool     `long:"norpc" description:"Disable built-in RPC server"`
	RPCListeners  []string `long:"rpclisten" description:"Add an interface/port to listen for RPC connections (default port: 9586, testnet: 19586, simnet: 19585)"`
	RPCUser       string   `short:"u" long:"rpcuser" description:"Username for RPC connections"`
	RPCPass       string   `short:"P" long:"rpcpass" description:"Password for RPC connections"`
	RPCMaxClients int      `long:"rpcmaxclients" description:"Max number of RPC clients for standard connections (parsed but not enforced; the RPC server does not limit concurrent clients)"`

	AvaConflictCooldown  time.Duration `long:"avaconflictcooldown" description:"Minimum interval between two accepted conflicts against the same peer's stakes"`
	AvaEnableReplacement bool          `long:"avaenablereplacement" description:"Allow a conflicting proof that outranks every peer it conflicts with to evict all of them"`
	AvaMaxValidPeers     int           `long:"avamaxvalidpeers" description:"Maximum number of simultaneously registered valid peers (0 for unbounded)"`
	AvaMaxConflicting    int           `long:"avamaxconflicting" description:"Maximum number of proofs held in the conflicting pool (0 for unbounded)"`
	AvaMaxOrphans        int           `long:"avamaxorphans" description:"Maximum number of proofs held in the orphan pool (0 for unbounded)"`
	AvaMaxBlacklist      int           `long:"avamaxblacklist" description:"Maximum number of rejected proof ids remembered in the invalidation blacklist"`
	AvaMasterKey         string        `long:"avamasterkey" description:"WIF-encoded master private key used to sign this node's own local avalanche proof"`

	DataDir   string
	LogDir    string
	NetParams *netParams
}

// netParams identifies the Decred network avalanched is operating on. Unlike
// the wider ecosystem's chaincfg.Params, this carries no genesis block or
// consensus-deployment data -- avalanched never needs to validate or
// construct a block, only to pick a default RPC port and label its logs.
type netParams struct {
	Name           string
	DefaultRPCPort string
}

var (
	mainNetParams = &netParams{Name: "mainnet", DefaultRPCPort: mainnetRPCPort}
	testNetParams = &netParams{Name: "testnet3", DefaultRPCPort: testnetRPCPort}
	simNetParams  = &netParams{Name: "simnet", DefaultRPCPort: simnetRPCPort}
)

// appDataDir returns an operating system specific directory to be used for
// storing application data for an application.
func appDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}
	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := string(appName[0]-'a'+'A') + appName[1:]
	appNameLower := string(appName[0]-'A'+'a') + appName[1:]

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
			return filepath.Join(appData, appNameUpper)
		}
	case "darwin":
		if homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", appNameUpper)
		}
	case "plan9":
		if homeDir != "" {
			return filepath.Join(homeDir, appNameLower)
		}
	default:
		if homeDir != "" {
			return filepath.Join(homeDir, "."+appNameLower)
		}
	}
	return "."
}

// normalizeAddress returns addr with any missing default port appended.
func normalizeAddress(addr, defaultPort string) string {
	_, _, err := net.SplitHostPort(addr)
	if err != nil {
		return net.JoinHostPort(addr, defaultPort)
	}
	return addr
}

func normalizeAddresses(addrs []string, defaultPort string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, normalizeAddress(a, defaultPort))
	}
	return out
}

// fileExists reports whether the named file or directory exists.
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
	return os.WriteFile(destPath, []byte(sampleconfig.Avalanched()), 0600)
}

// loadConfig initializes and parses the config using command line options
// and a config file, in the same two-pass go-flags idiom used elsewhere in
// the ecosystem: a first pass to pluck -C/-V/--appdata out early, then a
// second pass that merges the INI file with the full flag set so command
// line options override the file.
func loadConfig(appName string) (*config, []string, error) {
	cfg := config{
		ConfigFile:          defaultConfigFile,
		HomeDir:             defaultHomeDir,
		DebugLevel:          defaultLogLevel,
		RPCMaxClients:       defaultRPCMaxClients,
		AvaConflictCooldown: defaultConflictCooldown,
		AvaMaxBlacklist:     defaultMaxBlacklist,
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

	if preCfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	if preCfg.HomeDir != "" {
		cfg.HomeDir, _ = filepath.Abs(preCfg.HomeDir)
		cfg.ConfigFile = filepath.Join(cfg.HomeDir, defaultConfigFilename)
	}
	if preCfg.ConfigFile != "" {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	if err := createDefaultConfigFile(cfg.ConfigFile); err != nil {
		fmt.Fprintf(os.Stderr, "%s: warning: %v\n", appName, err)
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
		return nil, nil, fmt.Errorf("%s: testnet and simnet cannot be used "+
			"together", appName)
	}

	switch {
	case cfg.TestNet:
		cfg.NetParams = testNetParams
	case cfg.SimNet:
		cfg.NetParams = simNetParams
	default:
		cfg.NetParams = mainNetParams
	}
	rpcPort := cfg.NetParams.DefaultRPCPort

	cfg.DataDir = filepath.Join(cfg.HomeDir, defaultDataDirname)
	cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)

	if !cfg.DisableRPC && len(cfg.RPCListeners) == 0 {
		cfg.RPCListeners = []string{net.JoinHostPort("127.0.0.1", rpcPort)}
	}
	cfg.RPCListeners = normalizeAddresses(cfg.RPCListeners, rpcPort)

	if !cfg.DisableRPC && (cfg.RPCUser == "" || cfg.RPCPass == "") {
		return nil, nil, fmt.Errorf("%s: rpcuser and rpcpass must both be "+
			"set unless the RPC server is disabled with -norpc", appName)
	}

	if cfg.AvaMaxValidPeers < 0 || cfg.AvaMaxConflicting < 0 ||
		cfg.AvaMaxOrphans < 0 || cfg.AvaMaxBlacklist < 0 {
		return nil, nil, fmt.Errorf("%s: ava pool sizes must not be negative",
			appName)
	}

	if cfg.Profile != "" {
		profilePort, err := strconv.Atoi(cfg.Profile)
		if err != nil || profilePort < 1024 || profilePort > 65535 {
			return nil, nil, fmt.Errorf("%s: the profile port must be "+
				"between 1024 and 65535", appName)
		}
	}

	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
