package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(method string) (any, string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, errStatus := handler(req.Method)
		body := map[string]any{"status": "success"}
		if errStatus != "" {
			body["status"] = "error"
			body["error"] = errStatus
		}
		for k, v := range toMap(result) {
			body[k] = v
		}

		resultBytes, err := json.Marshal(body)
		require.NoError(t, err)

		resp := Response{Result: resultBytes, ID: req.ID}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func toMap(v any) map[string]any {
	if v == nil {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

func TestHTTP_Call_DecodesResult(t *testing.T) {
	server := newTestServer(t, func(method string) (any, string) {
		assert.Equal(t, "server_info", method)
		return map[string]any{"info": map[string]any{"build_version": "2.2.0"}}, ""
	})
	defer server.Close()

	h := WithEndpoint(server.URL)

	var out struct {
		Info struct {
			BuildVersion string `json:"build_version"`
		} `json:"info"`
	}
	err := h.Call(context.Background(), "server_info", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "2.2.0", out.Info.BuildVersion)
}

func TestHTTP_Call_PropagatesRPCError(t *testing.T) {
	server := newTestServer(t, func(method string) (any, string) {
		return nil, "actNotFound"
	})
	defer server.Close()

	h := WithEndpoint(server.URL)
	err := h.Call(context.Background(), "account_info", map[string]any{"account": "rDoesNotExist"}, nil)
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "actNotFound", rpcErr.Code)
}

func TestHTTP_AccountSequence(t *testing.T) {
	server := newTestServer(t, func(method string) (any, string) {
		return map[string]any{"account_data": map[string]any{"Sequence": 7}}, ""
	})
	defer server.Close()

	h := WithEndpoint(server.URL)
	seq, err := h.AccountSequence(context.Background(), "rSomeAccount")
	require.NoError(t, err)
	assert.Equal(t, uint32(7), seq)
}

func TestHTTP_OpenLedgerFee(t *testing.T) {
	server := newTestServer(t, func(method string) (any, string) {
		return map[string]any{"drops": map[string]any{"open_ledger_fee": "10"}}, ""
	})
	defer server.Close()

	h := WithEndpoint(server.URL)
	fee, err := h.OpenLedgerFee(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), fee)
}

func TestHTTP_CurrentLedgerIndex(t *testing.T) {
	server := newTestServer(t, func(method string) (any, string) {
		return map[string]any{"ledger_current_index": 12345}, ""
	})
	defer server.Close()

	h := WithEndpoint(server.URL)
	idx, err := h.CurrentLedgerIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(12345), idx)
}
