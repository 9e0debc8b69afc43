package transfer

import (
	"strings"

	"github.com/tranvictor/prize/locale"
	"github.com/tranvictor/prize/provider"
)

// Translator turns provider errors into guidance for the user.
type Translator struct {
	loc *locale.Localizer
}

func NewTranslator(loc *locale.Localizer) *Translator {
	if loc == nil {
		loc = locale.New()
	}
	return &Translator{loc: loc}
}

// Translate always returns a message, whatever err is, nil included. Codes
// are matched the way provider.HasCode does, so a code a wallet nests under
// data.originalError gets the same guidance as a top level one.
func (t *Translator) Translate(err error) string {
	message := provider.Message(err)
	switch {
	case provider.HasCode(err, provider.CodeResourceUnavailable):
		return t.loc.Text(locale.MsgRPCEndpoint, nil)
	case provider.HasCode(err, provider.CodeServerError) && strings.Contains(message, "INVALID"):
		return t.loc.Text(locale.MsgInvalidTransaction, nil)
	case provider.HasCode(err, provider.CodeUserRejected):
		return t.loc.Text(locale.MsgUserRejected, nil)
	case provider.HasCode(err, provider.CodeInternalError):
		return t.loc.Text(locale.MsgInternalError, nil)
	case message != "":
		return message
	}
	return t.loc.Text(locale.MsgGenericFailure, nil)
}
