package connect

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var explorers = map[uint64]string{
	1:        "https://etherscan.io",
	56:       "https://bscscan.com",
	137:      "https://polygonscan.com",
	8453:     "https://basescan.org",
	17000:    "https://holesky.etherscan.io",
	11155111: "https://sepolia.etherscan.io",
}

// ExplorerTxURL returns the block-explorer page for a transaction on the
// given chain; unknown chains get the blockscan aggregator.
func ExplorerTxURL(chainID uint64, th common.Hash) string {
	base, ok := explorers[chainID]
	if !ok {
		return fmt.Sprintf("https://blockscan.com/tx/%s", th.Hex())
	}
	return fmt.Sprintf("%s/tx/%s", base, th.Hex())
}
