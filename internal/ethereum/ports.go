package ethereum

import (
	"context"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// EthClient is the subset of ethclient.Client used to read Transfer logs and the blocks
// that carry them.
//
//counterfeiter:generate -o fake -fake-name EthClient . EthClient
type EthClient interface {
	FilterLogs(ctx context.Context, q geth.FilterQuery) ([]types.Log, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	BlockNumber(ctx context.Context) (uint64, error)
}
