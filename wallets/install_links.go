package wallets

import (
	"github.com/sahilm/fuzzy"
)

// Link is a wallet offered to users who have no EVM provider installed.
type Link struct {
	Name string
	URL  string
}

// Order is the order the install prompt shows them in.
var installLinks = []Link{
	{"MetaMask", "https://metamask.io/download/"},
	{"Coinbase Wallet", "https://www.coinbase.com/wallet"},
	{"Trust Wallet", "https://trustwallet.com/download"},
	{"Rainbow", "https://rainbow.me/"},
	{"Rabby", "https://rabby.io/"},
	{"TokenPocket", "https://tokenpocket.pro/"},
	{"imToken", "https://token.im/"},
	{"OKX Wallet", "https://www.okx.com/web3"},
	{"Phantom", "https://phantom.app/"},
	{"Brave Wallet", "https://brave.com/wallet/"},
}

// InstallLinks returns a copy of the install table.
func InstallLinks() []Link {
	result := make([]Link, len(installLinks))
	copy(result, installLinks)
	return result
}

type linkSource []Link

func (s linkSource) String(i int) string {
	return s[i].Name
}

func (s linkSource) Len() int {
	return len(s)
}

// Search returns the wallets whose name fuzzy matches query, best match
// first. An empty query returns the whole table.
func Search(query string) []Link {
	if query == "" {
		return InstallLinks()
	}
	matches := fuzzy.FindFrom(query, linkSource(installLinks))
	result := make([]Link, 0, len(matches))
	for _, m := range matches {
		result = append(result, installLinks[m.Index])
	}
	return result
}
