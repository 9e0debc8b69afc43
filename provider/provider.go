// Package provider talks to EIP-1193 style wallet providers through the one
// request method they all share.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// Provider brokers every chain interaction and user approval. A request may
// block until the user answers a prompt inside the wallet.
//
// *rpc.Client satisfies it, so any JSON-RPC endpoint that signs on behalf of
// its user (a desktop wallet's local RPC, a dev node with unlocked accounts)
// can be used directly.
type Provider interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

const (
	MethodRequestAccounts = "eth_requestAccounts"
	MethodChainID         = "eth_chainId"
	MethodSwitchChain     = "wallet_switchEthereumChain"
	MethodAddChain        = "wallet_addEthereumChain"
	MethodGasPrice        = "eth_gasPrice"
	MethodEstimateGas     = "eth_estimateGas"
	MethodSendTransaction = "eth_sendTransaction"
)

// EIP-1193 and EIP-1474 error codes
const (
	CodeUserRejected        = 4001
	CodeUnauthorized        = 4100
	CodeUnrecognizedChain   = 4902
	CodeServerError         = -32000
	CodeResourceUnavailable = -32002
	CodeMethodNotFound      = -32601
	CodeInternalError       = -32603
)

// Error is an error reported by a provider. It implements rpc.Error and
// rpc.DataError so it is handled exactly like errors coming off the wire.
type Error struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider error %d", e.Code)
	}
	return e.Message
}

func (e *Error) ErrorCode() int {
	return e.Code
}

func (e *Error) ErrorData() interface{} {
	return e.Data
}

// Code returns the provider error code carried anywhere in err's chain.
func Code(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

// HasCode reports whether err carries code, either directly or nested under
// data.originalError the way some mobile wallets wrap it.
func HasCode(err error, code int) bool {
	if c, ok := Code(err); ok && c == code {
		return true
	}
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) || dataErr.ErrorData() == nil {
		return false
	}
	raw, jerr := json.Marshal(dataErr.ErrorData())
	if jerr != nil {
		return false
	}
	var nested struct {
		OriginalError *struct {
			Code int `json:"code"`
		} `json:"originalError"`
	}
	if json.Unmarshal(raw, &nested) != nil || nested.OriginalError == nil {
		return false
	}
	return nested.OriginalError.Code == code
}

// Message returns the human readable message of err, empty when the
// provider sent none. go-ethereum's "json-rpc error N" placeholder for a
// message-less JSON-RPC error counts as none.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Message
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		msg := rpcErr.Error()
		if msg == fmt.Sprintf("json-rpc error %d", rpcErr.ErrorCode()) {
			return ""
		}
		return msg
	}
	return err.Error()
}
