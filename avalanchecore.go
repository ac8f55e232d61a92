// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/dcrd/dcrjson/v4"
	"github.com/decred/dcrd/internal/avalanche"
	"github.com/decred/dcrd/internal/avalanchecodec"
	"github.com/decred/dcrd/internal/avalanchesvc"
	"github.com/decred/dcrd/internal/limits"
	"github.com/decred/dcrd/internal/version"
	"github.com/decred/dcrd/rpc/avalanchetypes"
)

const appName = "avalanched"

// Standard JSON-RPC 2.0 reserved error codes, mirrored here since the
// wrapped dcrjson/v3 package declares its RPCErrorCode constants for the
// full-node RPC surface rather than as generic reusable values.
const (
	rpcErrParse          dcrjson.RPCErrorCode = -32700
	rpcErrInvalidRequest dcrjson.RPCErrorCode = -32600
	rpcErrMethodNotFound dcrjson.RPCErrorCode = -32601
	rpcErrInternal       dcrjson.RPCErrorCode = -32603
	rpcErrMisc           dcrjson.RPCErrorCode = -1
)

// systemClock adapts the standard library's time source to avalanche.Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// permissiveValidator accepts any structurally sound proof without
// consulting chain state. avalanched ships without a wired blockchain (see
// SPEC_FULL.md §12's non-goals for blockchain/txscript/mempool/database),
// so cryptographic soundness -- checked by avalanchecodec.Codec.Decode
// before a proof ever reaches the manager -- is the only gate available in
// this standalone binary. A deployment wiring a real chain node would
// inject avalanchesvc.NewChainValidator instead.
type permissiveValidator struct{}

func (permissiveValidator) Validate(proof *avalanche.Proof) (avalanche.ValidationResult, error) {
	if proof == nil || len(proof.Stakes) == 0 {
		return avalanche.Invalid, fmt.Errorf("proof stakes no outpoints")
	}
	return avalanche.Valid, nil
}

// noopRelay drops every relay request. avalanched ships without a wired
// P2P transport (spec.md §1 places network transport out of scope), so
// there is nowhere to relay to; DrainAndRelay still runs to keep the
// unbroadcast queue from growing unbounded.
type noopRelay struct{}

func (noopRelay) RelayProof(ctx context.Context, proofID chainhash.Hash) error {
	return nil
}

// cooldownInfo answers avalanchesvc.CooldownInfo from the loaded config.
type cooldownInfo struct {
	seconds float64
}

func (c cooldownInfo) ConflictCooldownSeconds() float64 { return c.seconds }

// avalanchedMain is the real entry point for avalanched. It is separated
// from main to allow deferred functions to run in all code paths.
func avalanchedMain() error {
	cfg, _, err := loadConfig(appName)
	if err != nil {
		return err
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return err
	}
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	avalanchedLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	avalanchedLog.Infof("Home dir: %s", cfg.HomeDir)

	if limits.SupportsMemoryLimit {
		avalanchedLog.Debug("Runtime soft memory limiting supported")
	}

	shutdownCtx := shutdownListener()

	var profiler profileServer
	if cfg.Profile != "" {
		if err := profiler.Start(cfg.Profile, false); err != nil {
			return err
		}
		defer profiler.Stop()
	}

	mgrCfg := avalanche.Config{
		ConflictCooldown:       cfg.AvaConflictCooldown,
		EnableProofReplacement: cfg.AvaEnableReplacement,
		MaxValidPeers:          cfg.AvaMaxValidPeers,
		MaxConflictingProofs:   cfg.AvaMaxConflicting,
		MaxOrphanProofs:        cfg.AvaMaxOrphans,
		MaxBlacklist:           cfg.AvaMaxBlacklist,
	}
	manager := avalanche.New(mgrCfg, permissiveValidator{}, systemClock{}, rand.Reader())

	codec := avalanchecodec.New()
	if cfg.AvaMasterKey != "" {
		if err := codec.SetLocalMasterKey(cfg.AvaMasterKey); err != nil {
			return fmt.Errorf("invalid avamasterkey: %w", err)
		}
	}

	svc := avalanchesvc.New(avalanchesvc.Config{
		Manager:  manager,
		Codec:    codec,
		Relay:    noopRelay{},
		ChainCfg: cooldownInfo{seconds: cfg.AvaConflictCooldown.Seconds()},
	})

	peerProgressLog.SetLastLogTime(time.Now())
	statTicker := time.NewTicker(10 * time.Second)
	defer statTicker.Stop()
	go func() {
		for {
			select {
			case <-statTicker.C:
				peerProgressLog.LogStats(manager.Stats(), false)
				svc.DrainAndRelay(shutdownCtx)
			case <-shutdownCtx.Done():
				return
			}
		}
	}()

	var rpcServers []*http.Server
	if !cfg.DisableRPC {
		for _, listenAddr := range cfg.RPCListeners {
			srv, err := startRPCServer(shutdownCtx, listenAddr, cfg, svc)
			if err != nil {
				return err
			}
			rpcServers = append(rpcServers, srv)
		}
	}

	avalanchedLog.Info("avalanched started")
	<-shutdownCtx.Done()
	avalanchedLog.Info("Shutting down RPC servers...")
	for _, srv := range rpcServers {
		shutdownTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		srv.Shutdown(shutdownTimeout)
		cancel()
	}
	if logRotator != nil {
		logRotator.Close()
	}

	return nil
}

// startRPCServer starts a plain-HTTP JSON-RPC server (no TLS, no websocket
// push -- see SPEC_FULL.md §12) that dispatches the commands registered in
// rpc/avalanchetypes to methods on svc.
func startRPCServer(ctx context.Context, listenAddr string, cfg *config, svc *avalanchesvc.Service) (*http.Server, error) {
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("unable to listen on %s: %w", listenAddr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", rpcHandler(cfg, svc))
	srv := &http.Server{Handler: mux}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			avalanchedLog.Errorf("RPC server on %s exited with error: %v", listenAddr, err)
		}
	}()
	avalanchedLog.Infof("RPC server listening on %s", listenAddr)

	return srv, nil
}

func rpcHandler(cfg *config, svc *avalanchesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checkRPCAuth(cfg, r) {
			w.Header().Set("WWW-Authenticate", `Basic realm="avalanched RPC"`)
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		var req dcrjson.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeRPCError(w, nil, dcrjson.NewRPCError(rpcErrParse, err.Error()))
			return
		}

		cmd, err := dcrjson.UnmarshalCmd(&req)
		if err != nil {
			writeRPCError(w, req.ID, dcrjson.NewRPCError(rpcErrMethodNotFound, err.Error()))
			return
		}

		result, err := dispatchRPC(svc, cmd)
		if err != nil {
			writeRPCError(w, req.ID, dcrjson.NewRPCError(rpcErrMisc, err.Error()))
			return
		}

		marshalled, err := dcrjson.MarshalResponse(req.Jsonrpc, req.ID, result, nil)
		if err != nil {
			writeRPCError(w, req.ID, dcrjson.NewRPCError(rpcErrInternal, err.Error()))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(marshalled)
	}
}

func dispatchRPC(svc *avalanchesvc.Service, cmd interface{}) (interface{}, error) {
	switch c := cmd.(type) {
	case *avalanchetypes.GetAvalancheKeyCmd:
		return svc.GetAvalancheKey()
	case *avalanchetypes.AddAvalancheNodeCmd:
		return svc.AddAvalancheNode(c)
	case *avalanchetypes.BuildAvalancheProofCmd:
		return svc.BuildAvalancheProof(c)
	case *avalanchetypes.DecodeAvalancheProofCmd:
		return svc.DecodeAvalancheProof(c)
	case *avalanchetypes.DelegateAvalancheProofCmd:
		return svc.DelegateAvalancheProof(c)
	case *avalanchetypes.GetAvalancheInfoCmd:
		return svc.GetAvalancheInfo(), nil
	case *avalanchetypes.GetAvalanchePeerInfoCmd:
		return svc.GetAvalanchePeerInfo(), nil
	case *avalanchetypes.GetRawAvalancheProofCmd:
		return svc.GetRawAvalancheProof(c)
	case *avalanchetypes.SendAvalancheProofCmd:
		return svc.SendAvalancheProof(c)
	case *avalanchetypes.VerifyAvalancheProofCmd:
		return svc.VerifyAvalancheProof(c), nil
	default:
		return nil, fmt.Errorf("unhandled command type %T", cmd)
	}
}

func writeRPCError(w http.ResponseWriter, id interface{}, rpcErr *dcrjson.RPCError) {
	marshalled, err := dcrjson.MarshalResponse("1.0", id, nil, rpcErr)
	if err != nil {
		http.Error(w, rpcErr.Message, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(marshalled)
}

func checkRPCAuth(cfg *config, r *http.Request) bool {
	if cfg.RPCUser == "" && cfg.RPCPass == "" {
		return true
	}
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return false
	}
	const prefix = "Basic "
	if len(authHeader) <= len(prefix) {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(authHeader[len(prefix):])
	if err != nil {
		return false
	}
	expected := cfg.RPCUser + ":" + cfg.RPCPass
	return string(decoded) == expected
}

func main() {
	if err := avalanchedMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
