package cmd

import (
	"fmt"
	"strings"

	"github.com/tranvictor/prize/config"
	"github.com/tranvictor/prize/transfer"
)

// exit statuses of prize send
const (
	EXIT_FAILED   int = 1
	EXIT_REJECTED int = 2
	EXIT_NOWALLET int = 3
)

// transferRequest builds the request of prize send from its positional args
// and, when those are absent, its --to and --amount flags.
func transferRequest(args []string) (transfer.Request, error) {
	req := transfer.Request{
		Recipient: strings.TrimSpace(config.To),
		Amount:    strings.TrimSpace(config.Amount),
	}
	if len(args) > 0 {
		if req.Recipient != "" && req.Recipient != args[0] {
			return req, fmt.Errorf("recipient given twice: %s and %s", args[0], req.Recipient)
		}
		req.Recipient = args[0]
	}
	if len(args) > 1 {
		if req.Amount != "" && req.Amount != args[1] {
			return req, fmt.Errorf("amount given twice: %s and %s", args[1], req.Amount)
		}
		req.Amount = args[1]
	}

	chainID, err := config.ChainID()
	if err != nil {
		return req, err
	}
	req.ChainID = chainID
	return req, nil
}

func exitCode(outcome transfer.Outcome) int {
	switch {
	case outcome.Succeeded():
		return 0
	case outcome.NoWallet:
		return EXIT_NOWALLET
	case outcome.Err.Kind == transfer.KindSubmissionRejected:
		return EXIT_REJECTED
	}
	return EXIT_FAILED
}
