// Package ordapi implements the HTTP client for indexer endpoints serving the
// ordinal/brc20 receipt API.
package ordapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"

	"github.com/wanyvic/ordinal-comparator/internal/model"
	"github.com/wanyvic/ordinal-comparator/pkg/safe"
)

type (
	// Metrics records metrics for endpoint API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const (
	defaultTimeout = 30 * time.Second
	defaultRPS     = 50
)

// Client talks to one indexer endpoint. Requests are paced by a rate limiter
// so the comparator's worker pool cannot overwhelm the service.
type Client struct {
	baseURL    string
	protocol   model.Protocol
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    Metrics
}

// NewClient constructs a rate-limited, instrumented endpoint client.
func NewClient(baseURL string, protocol model.Protocol, timeout time.Duration, rps int, metrics Metrics) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if rps <= 0 {
		rps = defaultRPS
	}
	return &Client{
		baseURL:    model.NormalizeEndpoint(baseURL),
		protocol:   protocol,
		httpClient: &http.Client{Timeout: timeout},
		rl:         ratelimit.New(rps),
		metrics:    metrics,
	}
}

// BaseURL returns the normalized endpoint URL the client was built for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NodeInfo retrieves chain information from the endpoint. Network "mainnet"
// is normalized to "bitcoin" so both naming conventions compare equal.
func (c *Client) NodeInfo(ctx context.Context) (info *NodeInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("node_info", err, started)
	}()

	var payload nodeInfoPayload
	if err = c.getJSON(ctx, c.baseURL+"/api/v1/node/info", "node info", &payload); err != nil {
		return nil, err
	}

	height, err := safe.Uint64(payload.ChainInfo.OrdBlockHeight)
	if err != nil {
		return nil, &SchemaError{Op: "node info", Err: fmt.Errorf("ord block height: %w", err)}
	}

	network := payload.ChainInfo.Network
	if network == "mainnet" {
		network = string(model.Bitcoin)
	}
	return &NodeInfo{Network: network, OrdBlockHeight: height}, nil
}

// Tip returns the endpoint's current ord-indexed chain tip.
func (c *Client) Tip(ctx context.Context) (uint64, error) {
	info, err := c.NodeInfo(ctx)
	if err != nil {
		return 0, err
	}
	return info.OrdBlockHeight, nil
}

// BlockHash retrieves and validates the block hash for a height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (hash string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_hash", err, started)
	}()

	url := fmt.Sprintf("%s/blockhash/%d", c.baseURL, height)
	body, err := c.get(ctx, url, "block hash")
	if err != nil {
		return "", err
	}

	raw := strings.TrimSpace(string(body))
	parsed, perr := chainhash.NewHashFromStr(raw)
	if perr != nil {
		return "", &SchemaError{Op: "block hash", Err: fmt.Errorf("parse %q: %w", raw, perr)}
	}
	return parsed.String(), nil
}

// BlockReceipts fetches the protocol receipts for a block hash.
func (c *Client) BlockReceipts(ctx context.Context, blockHash string) (receipts model.Receipts, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_receipts", err, started)
	}()

	var path string
	switch c.protocol {
	case model.Ordinal:
		path = fmt.Sprintf("/api/v1/ord/block/%s/events", blockHash)
	case model.BRC20:
		path = fmt.Sprintf("/api/v1/brc20/block/%s/events", blockHash)
	default:
		return model.Receipts{}, fmt.Errorf("unsupported protocol %q", c.protocol)
	}

	var payload blockEventsPayload
	if err = c.getJSON(ctx, c.baseURL+path, "block receipts", &payload); err != nil {
		return model.Receipts{}, err
	}
	return c.decodeReceipts(payload)
}

func (c *Client) decodeReceipts(payload blockEventsPayload) (model.Receipts, error) {
	receipts := model.Receipts{Protocol: c.protocol}
	for _, block := range payload.Block {
		for _, raw := range block.Events {
			switch c.protocol {
			case model.Ordinal:
				var dto ordinalEventDTO
				if err := json.Unmarshal(raw, &dto); err != nil {
					return model.Receipts{}, &SchemaError{Op: "block receipts", Err: fmt.Errorf("decode ordinal event: %w", err)}
				}
				receipts.Ordinal = append(receipts.Ordinal, model.OrdinalEvent{
					InscriptionID: dto.InscriptionID,
					Type:          dto.Type,
					Owner:         dto.Owner,
					ContentHash:   dto.ContentHash,
					Sequence:      dto.Sequence,
				})
			case model.BRC20:
				var dto brc20EventDTO
				if err := json.Unmarshal(raw, &dto); err != nil {
					return model.Receipts{}, &SchemaError{Op: "block receipts", Err: fmt.Errorf("decode brc20 event: %w", err)}
				}
				receipts.BRC20 = append(receipts.BRC20, model.BRC20Event{
					Ticker: dto.Ticker,
					TxID:   dto.TxID,
					Op:     dto.Op,
					Amount: dto.Amount,
					From:   dto.From,
					To:     dto.To,
					Valid:  dto.Valid,
					Msg:    dto.Msg,
				})
			}
		}
	}
	return receipts, nil
}

func (c *Client) getJSON(ctx context.Context, url, description string, out any) error {
	body, err := c.get(ctx, url, description)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &SchemaError{Op: description, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if len(env.Data) == 0 {
		return &SchemaError{Op: description, Err: fmt.Errorf("empty data envelope (code %d, msg %q)", env.Code, env.Msg)}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &SchemaError{Op: description, Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}

func (c *Client) get(ctx context.Context, url, description string) ([]byte, error) {
	c.rl.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", description, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TransientError{Op: description, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Op: description, Err: fmt.Errorf("read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &TransientError{Op: description, Err: fmt.Errorf("status %d from %s", resp.StatusCode, url)}
	default:
		return nil, &SchemaError{Op: description, Err: fmt.Errorf("status %d from %s", resp.StatusCode, url)}
	}
}
