package transfer

import (
	"errors"
	"fmt"
)

// Kind classifies why a transfer attempt failed.
type Kind int

const (
	KindInvalidAmount Kind = iota + 1
	KindInvalidAddress
	KindNoAccount
	KindChainSwitchFailed
	KindProviderUnavailable
	KindSubmissionRejected
	KindSubmissionFailed
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrNoAccount           = errors.New("no account")
	ErrChainSwitchFailed   = errors.New("chain switch failed")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrSubmissionRejected  = errors.New("submission rejected")
	ErrSubmissionFailed    = errors.New("submission failed")
)

var kindErrors = map[Kind]error{
	KindInvalidAmount:       ErrInvalidAmount,
	KindInvalidAddress:      ErrInvalidAddress,
	KindNoAccount:           ErrNoAccount,
	KindChainSwitchFailed:   ErrChainSwitchFailed,
	KindProviderUnavailable: ErrProviderUnavailable,
	KindSubmissionRejected:  ErrSubmissionRejected,
	KindSubmissionFailed:    ErrSubmissionFailed,
}

func (k Kind) String() string {
	switch k {
	case KindInvalidAmount:
		return "InvalidAmount"
	case KindInvalidAddress:
		return "InvalidAddress"
	case KindNoAccount:
		return "NoAccount"
	case KindChainSwitchFailed:
		return "ChainSwitchFailed"
	case KindProviderUnavailable:
		return "ProviderUnavailable"
	case KindSubmissionRejected:
		return "SubmissionRejected"
	case KindSubmissionFailed:
		return "SubmissionFailed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the failure of a transfer attempt. errors.Is matches it against
// both the sentinel of its Kind and its cause.
type Error struct {
	Kind    Kind
	Code    int    // provider error code, 0 when the failure is local
	Message string // localized message for the user
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	result := []error{}
	if sentinel, ok := kindErrors[e.Kind]; ok {
		result = append(result, sentinel)
	}
	if e.Err != nil {
		result = append(result, e.Err)
	}
	return result
}

// Outcome is the terminal result of a transfer attempt: TxHash on success,
// Err otherwise.
type Outcome struct {
	TxHash string
	Err    *Error
	// NoWallet is set when no provider was found at all, as opposed to a
	// provider that refused or dropped the connection.
	NoWallet bool
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}
