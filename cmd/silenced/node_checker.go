package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// syncState is the slice of CometBFT /status the health server cares about.
type syncState struct {
	CatchingUp bool
	Height     int64
}

// nodeProbe reads liveness, sync and peer state for the local node.
type nodeProbe interface {
	Live() error
	SyncState() (syncState, error)
	PeerCount() (int, error)
}

// cometProbe implements nodeProbe against the CometBFT RPC endpoint.
type cometProbe struct {
	base   string
	client *http.Client
}

func newCometProbe(base string) *cometProbe {
	return &cometProbe{
		base:   base,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *cometProbe) getJSON(path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (p *cometProbe) Live() error {
	if err := p.getJSON("/health", nil); err != nil {
		return fmt.Errorf("rpc unreachable: %w", err)
	}
	return nil
}

func (p *cometProbe) SyncState() (syncState, error) {
	var status struct {
		Result struct {
			SyncInfo struct {
				CatchingUp        bool   `json:"catching_up"`
				LatestBlockHeight string `json:"latest_block_height"`
			} `json:"sync_info"`
		} `json:"result"`
	}
	if err := p.getJSON("/status", &status); err != nil {
		return syncState{}, err
	}

	height, _ := strconv.ParseInt(status.Result.SyncInfo.LatestBlockHeight, 10, 64)
	return syncState{
		CatchingUp: status.Result.SyncInfo.CatchingUp,
		Height:     height,
	}, nil
}

func (p *cometProbe) PeerCount() (int, error) {
	var netInfo struct {
		Result struct {
			NPeers string `json:"n_peers"`
		} `json:"result"`
	}
	if err := p.getJSON("/net_info", &netInfo); err != nil {
		return 0, err
	}

	peers, _ := strconv.Atoi(netInfo.Result.NPeers)
	return peers, nil
}
