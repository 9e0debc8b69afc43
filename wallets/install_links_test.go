package wallets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/prize/wallets"
)

func TestInstallLinks(t *testing.T) {
	links := wallets.InstallLinks()
	require.Len(t, links, 10)
	assert.Equal(t, wallets.Link{Name: "MetaMask", URL: "https://metamask.io/download/"}, links[0])
	assert.Equal(t, wallets.Link{Name: "Brave Wallet", URL: "https://brave.com/wallet/"}, links[9])

	seen := map[string]bool{}
	for _, l := range links {
		assert.False(t, seen[l.Name], "duplicated wallet %s", l.Name)
		seen[l.Name] = true
		assert.True(t, strings.HasPrefix(l.URL, "https://"), l.URL)
	}
}

func TestInstallLinksReturnsCopy(t *testing.T) {
	links := wallets.InstallLinks()
	links[0].URL = "https://phishing.example"
	assert.Equal(t, "https://metamask.io/download/", wallets.InstallLinks()[0].URL)
}

func TestSearch(t *testing.T) {
	found := wallets.Search("mm")
	require.NotEmpty(t, found)
	assert.Equal(t, "MetaMask", found[0].Name)

	found = wallets.Search("okx")
	require.NotEmpty(t, found)
	assert.Equal(t, "OKX Wallet", found[0].Name)

	assert.Len(t, wallets.Search(""), 10)
	assert.Empty(t, wallets.Search("zzzz"))
}
