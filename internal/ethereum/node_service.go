package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/sync/errgroup"
)

const erc20TransferABI = `[{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}]`

// headerConcurrency bounds parallel block header lookups.
const headerConcurrency = 8

var TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// ErrNode marks failures of calls to the ethereum node.
var ErrNode = errors.New("ethereum node request failed")

type EthService struct {
	client   EthClient
	contract common.Address
	abi      abi.ABI
}

func NewEthService(ethClient EthClient, contract string) (*EthService, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20TransferABI))
	if err != nil {
		return nil, fmt.Errorf("parse transfer abi: %w", err)
	}

	return &EthService{
		client:   ethClient,
		contract: common.HexToAddress(contract),
		abi:      parsed,
	}, nil
}

func (s *EthService) LatestBlock(ctx context.Context) (uint64, error) {
	block, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get latest block: %w: %w", ErrNode, err)
	}
	return block, nil
}

// FetchTransferLogs returns the token's Transfer events sent or received by address in
// [fromBlock, toBlock]. A log matched by both directions appears once, and only the first
// log of each transaction is kept.
func (s *EthService) FetchTransferLogs(ctx context.Context, address string, fromBlock, toBlock uint64) ([]TransferLog, error) {
	addrTopic := common.BytesToHash(common.HexToAddress(address).Bytes())

	base := geth.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{s.contract},
	}
	sent, received := base, base
	sent.Topics = [][]common.Hash{{TransferTopic}, {addrTopic}}
	received.Topics = [][]common.Hash{{TransferTopic}, nil, {addrTopic}}

	var sentLogs, receivedLogs []types.Log
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs, err := s.client.FilterLogs(gctx, sent)
		if err != nil {
			return fmt.Errorf("filter sent transfers: %w: %w", ErrNode, err)
		}
		sentLogs = logs
		return nil
	})
	g.Go(func() error {
		logs, err := s.client.FilterLogs(gctx, received)
		if err != nil {
			return fmt.Errorf("filter received transfers: %w: %w", ErrNode, err)
		}
		receivedLogs = logs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[common.Hash]struct{}, len(sentLogs)+len(receivedLogs))
	transfers := make([]TransferLog, 0, len(sentLogs)+len(receivedLogs))
	for _, log := range append(sentLogs, receivedLogs...) {
		if log.Removed || len(log.Topics) < 3 {
			continue
		}
		if _, ok := seen[log.TxHash]; ok {
			continue
		}

		transfer, err := s.decode(log)
		if err != nil {
			return nil, err
		}
		seen[log.TxHash] = struct{}{}
		transfers = append(transfers, transfer)
	}

	return transfers, nil
}

func (s *EthService) decode(log types.Log) (TransferLog, error) {
	var event struct {
		Value *big.Int
	}
	if err := s.abi.UnpackIntoInterface(&event, "Transfer", log.Data); err != nil {
		return TransferLog{}, fmt.Errorf("decode transfer log %s: %w", log.TxHash.Hex(), err)
	}

	return TransferLog{
		TxHash:      strings.ToLower(log.TxHash.Hex()),
		LogIndex:    log.Index,
		BlockNumber: log.BlockNumber,
		From:        strings.ToLower(common.BytesToAddress(log.Topics[1].Bytes()).Hex()),
		To:          strings.ToLower(common.BytesToAddress(log.Topics[2].Bytes()).Hex()),
		Value:       event.Value.String(),
	}, nil
}

// BlockTimestamps resolves the timestamp of each distinct block with one header lookup
// per block.
func (s *EthService) BlockTimestamps(ctx context.Context, blocks []uint64) (map[uint64]int64, error) {
	timestamps := make(map[uint64]int64, len(blocks))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(headerConcurrency)

	requested := make(map[uint64]struct{}, len(blocks))
	for _, block := range blocks {
		if _, ok := requested[block]; ok {
			continue
		}
		requested[block] = struct{}{}

		g.Go(func() error {
			header, err := s.client.HeaderByNumber(gctx, new(big.Int).SetUint64(block))
			if err != nil {
				return fmt.Errorf("get header of block %d: %w: %w", block, ErrNode, err)
			}

			mu.Lock()
			timestamps[block] = int64(header.Time)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return timestamps, nil
}
