package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultTimeout bounds how long a one-shot HTTP request waits for a
// response before giving up.
const DefaultTimeout = 30 * time.Second

// HTTP is a one-shot JSON-RPC transport: each Call opens (or reuses,
// via the underlying http.Client's connection pool) a single request/
// response round trip against endpoint. It holds no subscription state,
// since rippled only delivers subscription events over WebSocket.
type HTTP struct {
	endpoint string
	client   *http.Client
}

// WithEndpoint returns an HTTP transport that posts JSON-RPC requests to
// endpoint (e.g. "https://s1.ripple.com:51234/").
func WithEndpoint(endpoint string) *HTTP {
	return &HTTP{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
}

// WithHTTPClient overrides the underlying http.Client, e.g. to set a
// custom transport or timeout.
func (h *HTTP) WithHTTPClient(client *http.Client) *HTTP {
	h.client = client
	return h
}

// Call issues a single JSON-RPC request and decodes its result into out
// (a pointer, or nil to discard the result).
func (h *HTTP) Call(ctx context.Context, method string, params any, out any) error {
	var paramsArr []any
	if params != nil {
		paramsArr = []any{params}
	}

	body, err := json.Marshal(Request{Method: method, Params: paramsArr})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transport: %s: unexpected HTTP status %d: %s", method, resp.StatusCode, string(respBody))
	}

	var rpcResp Response
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("transport: %s: decoding response: %w", method, err)
	}

	var result Result
	if err := json.Unmarshal(rpcResp.Result, &result); err == nil && result.Status == "error" {
		return &RPCError{Command: method, Code: result.Error}
	}

	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("transport: %s: decoding result: %w", method, err)
		}
	}
	return nil
}

// AccountSequence fetches an account's next transaction sequence number
// via account_info, satisfying wallet.AutofillClient.
func (h *HTTP) AccountSequence(ctx context.Context, account string) (uint32, error) {
	var out struct {
		AccountData struct {
			Sequence uint32 `json:"Sequence"`
		} `json:"account_data"`
	}
	if err := h.Call(ctx, "account_info", map[string]any{"account": account, "ledger_index": "current"}, &out); err != nil {
		return 0, err
	}
	return out.AccountData.Sequence, nil
}

// OpenLedgerFee fetches the network's current suggested open-ledger fee
// in drops via the fee RPC method, satisfying wallet.AutofillClient.
func (h *HTTP) OpenLedgerFee(ctx context.Context) (uint64, error) {
	var out struct {
		Drops struct {
			OpenLedgerFee string `json:"open_ledger_fee"`
		} `json:"drops"`
	}
	if err := h.Call(ctx, "fee", nil, &out); err != nil {
		return 0, err
	}
	return strconv.ParseUint(out.Drops.OpenLedgerFee, 10, 64)
}

// CurrentLedgerIndex fetches the current open ledger's index via the
// ledger RPC method, satisfying wallet.AutofillClient.
func (h *HTTP) CurrentLedgerIndex(ctx context.Context) (uint32, error) {
	var out struct {
		LedgerCurrentIndex uint32 `json:"ledger_current_index"`
	}
	if err := h.Call(ctx, "ledger", map[string]any{"ledger_index": "current"}, &out); err != nil {
		return 0, err
	}
	return out.LedgerCurrentIndex, nil
}
