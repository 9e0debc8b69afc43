package provider_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/prize/provider"
)

func TestErrorImplementsRPCErrors(t *testing.T) {
	var err error = &provider.Error{Code: provider.CodeUserRejected, Message: "User rejected the request."}

	var rpcErr rpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, 4001, rpcErr.ErrorCode())

	var dataErr rpc.DataError
	assert.True(t, errors.As(err, &dataErr))
}

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("sending: %w", &provider.Error{Code: provider.CodeInternalError})
	code, ok := provider.Code(wrapped)
	require.True(t, ok)
	assert.Equal(t, -32603, code)

	_, ok = provider.Code(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = provider.Code(nil)
	assert.False(t, ok)
}

func TestHasCodeNested(t *testing.T) {
	direct := &provider.Error{Code: provider.CodeUnrecognizedChain}
	assert.True(t, provider.HasCode(direct, provider.CodeUnrecognizedChain))

	nested := &provider.Error{
		Code:    provider.CodeInternalError,
		Message: "Unrecognized chain ID",
		Data: map[string]interface{}{
			"originalError": map[string]interface{}{"code": 4902, "message": "Unrecognized chain ID \"0x1\""},
		},
	}
	assert.True(t, provider.HasCode(nested, provider.CodeUnrecognizedChain))
	assert.True(t, provider.HasCode(nested, provider.CodeInternalError))
	assert.False(t, provider.HasCode(nested, provider.CodeUserRejected))

	assert.False(t, provider.HasCode(&provider.Error{Code: 1, Data: "opaque"}, provider.CodeUnrecognizedChain))
	assert.False(t, provider.HasCode(errors.New("plain"), provider.CodeUnrecognizedChain))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", provider.Message(nil))
	assert.Equal(t, "", provider.Message(&provider.Error{Code: 4001}))
	assert.Equal(t, "nope", provider.Message(fmt.Errorf("x: %w", &provider.Error{Code: 4001, Message: "nope"})))
	assert.Equal(t, "dial tcp: refused", provider.Message(errors.New("dial tcp: refused")))
	assert.Equal(t, "provider error 4001", (&provider.Error{Code: 4001}).Error())
}

// walletServer answers JSON-RPC requests over HTTP from a method table, an
// entry holding a *provider.Error is sent back as a JSON-RPC error.
func walletServer(t *testing.T, table map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		switch v := table[req.Method].(type) {
		case nil:
			resp["error"] = map[string]interface{}{"code": provider.CodeMethodNotFound, "message": "method not found"}
		case *provider.Error:
			resp["error"] = map[string]interface{}{"code": v.Code, "message": v.Message, "data": v.Data}
		default:
			resp["result"] = v
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRPCClientErrorsAreUnderstood(t *testing.T) {
	srv := walletServer(t, map[string]interface{}{
		provider.MethodChainID: "0x1",
		provider.MethodSwitchChain: &provider.Error{
			Code:    provider.CodeInternalError,
			Message: "Unrecognized chain ID",
			Data:    map[string]interface{}{"originalError": map[string]interface{}{"code": 4902}},
		},
		provider.MethodSendTransaction: &provider.Error{Code: provider.CodeUserRejected, Message: "User denied transaction signature."},
		provider.MethodRequestAccounts: &provider.Error{Code: provider.CodeUnauthorized},
	})

	env, err := provider.DialEnvironment(context.Background(), srv.URL, "")
	require.NoError(t, err)
	defer env.Close()
	p := provider.Detect(env)
	require.NotNil(t, p)

	var chainID string
	require.NoError(t, p.CallContext(context.Background(), &chainID, provider.MethodChainID))
	assert.Equal(t, "0x1", chainID)

	err = p.CallContext(context.Background(), nil, provider.MethodSendTransaction, map[string]string{})
	code, ok := provider.Code(err)
	require.True(t, ok)
	assert.Equal(t, provider.CodeUserRejected, code)
	assert.Equal(t, "User denied transaction signature.", provider.Message(err))

	err = p.CallContext(context.Background(), nil, provider.MethodSwitchChain, map[string]string{"chainId": "0x38"})
	assert.True(t, provider.HasCode(err, provider.CodeUnrecognizedChain))
	assert.Equal(t, "Unrecognized chain ID", provider.Message(err))

	// no message on the wire, go-ethereum fills in "json-rpc error 4100"
	err = p.CallContext(context.Background(), nil, provider.MethodRequestAccounts)
	require.Error(t, err)
	code, ok = provider.Code(err)
	require.True(t, ok)
	assert.Equal(t, provider.CodeUnauthorized, code)
	assert.Equal(t, "", provider.Message(err))
	assert.Equal(t, "", provider.Message(fmt.Errorf("requesting accounts: %w", err)))
}
