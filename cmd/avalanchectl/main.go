// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avalanchectl is a thin command line client for avalanched's JSON-RPC
// surface. It builds one of the commands registered in rpc/avalanchetypes,
// sends it to the configured RPC server over plain HTTP with basic auth,
// and prints the result.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/decred/dcrd/dcrjson/v4"
	"github.com/decred/dcrd/rpc/avalanchetypes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: avalanchectl [options] <command> [params]")
	}

	cmd, err := buildCmd(args[0], args[1:])
	if err != nil {
		return err
	}

	marshalled, err := dcrjson.MarshalCmd("1.0", 1, cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	result, err := sendRequest(cfg, marshalled)
	if err != nil {
		return err
	}

	fmt.Println(string(result))
	return nil
}

// buildCmd constructs the registered command struct named by method out of
// the raw positional arguments supplied on the command line.
func buildCmd(method string, args []string) (interface{}, error) {
	switch method {
	case "getavalanchekey":
		return avalanchetypes.NewGetAvalancheKeyCmd(), nil

	case "addavalanchenode":
		if len(args) < 2 {
			return nil, fmt.Errorf("%s: requires nodeid and proofid", method)
		}
		nodeID, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid nodeid: %w", method, err)
		}
		var pubKey *string
		if len(args) > 2 {
			pubKey = &args[2]
		}
		return avalanchetypes.NewAddAvalancheNodeCmd(int32(nodeID), args[1], pubKey), nil

	case "buildavalancheproof":
		if len(args) != 4 {
			return nil, fmt.Errorf("%s: requires sequence, expiration, "+
				"masterkey, and a JSON array of stakes", method)
		}
		sequence, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid sequence: %w", method, err)
		}
		expiration, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid expiration: %w", method, err)
		}
		var stakes []avalanchetypes.AvalancheStakeInput
		if err := json.Unmarshal([]byte(args[3]), &stakes); err != nil {
			return nil, fmt.Errorf("%s: invalid stakes JSON: %w", method, err)
		}
		return avalanchetypes.NewBuildAvalancheProofCmd(sequence, expiration, args[2], stakes), nil

	case "decodeavalancheproof":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: requires a proof", method)
		}
		return avalanchetypes.NewDecodeAvalancheProofCmd(args[0]), nil

	case "delegateavalancheproof":
		if len(args) != 3 {
			return nil, fmt.Errorf("%s: requires proofid, privatekey, and "+
				"delegationkey", method)
		}
		return avalanchetypes.NewDelegateAvalancheProofCmd(args[0], args[1], args[2]), nil

	case "getavalancheinfo":
		return avalanchetypes.NewGetAvalancheInfoCmd(), nil

	case "getavalanchepeerinfo":
		return avalanchetypes.NewGetAvalanchePeerInfoCmd(), nil

	case "getrawavalancheproof":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: requires a proofid", method)
		}
		return avalanchetypes.NewGetRawAvalancheProofCmd(args[0]), nil

	case "sendavalancheproof":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: requires a proof", method)
		}
		return avalanchetypes.NewSendAvalancheProofCmd(args[0]), nil

	case "verifyavalancheproof":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: requires a proof", method)
		}
		return avalanchetypes.NewVerifyAvalancheProofCmd(args[0]), nil

	default:
		return nil, fmt.Errorf("unknown command %q", method)
	}
}

func sendRequest(cfg *config, marshalledCmd []byte) (json.RawMessage, error) {
	url := "http://" + cfg.RPCServer + "/"
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(marshalledCmd))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(cfg.RPCUser, cfg.RPCPass)

	httpResp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send RPC request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read RPC response: %w", err)
	}

	var resp dcrjson.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RPC response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("%d: %s", resp.Error.Code, resp.Error.Message)
	}
	return resp.Result, nil
}
