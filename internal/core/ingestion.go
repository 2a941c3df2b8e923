package core

import (
	"context"
	"errors"
	"flowledger/internal/ethereum"
	"flowledger/internal/explorer"
	"flowledger/internal/metrics"
	"flowledger/internal/repository"
	"flowledger/internal/search"
	"fmt"
	"strings"
)

// SyncExplorer pulls the address's token transfers from the explorer API and caches the
// ones not seen before. It returns how many rows were inserted; on any error it returns
// zero and leaves the cache as it was before the failing step.
func (l *Ledger) SyncExplorer(ctx context.Context, req ExplorerSyncRequest) (int, error) {
	address := strings.ToLower(strings.TrimSpace(req.Address))
	if !search.IsAddress(address) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, req.Address)
	}

	apiKey, err := l.repo.GetSetting(ctx, SettingExplorerAPIKey)
	if err != nil && !errors.Is(err, repository.ErrSettingNotFound) {
		return 0, l.ingestionFailed(sourceExplorer, address, fmt.Errorf("read explorer api key: %w", err))
	}
	if apiKey == "" {
		return 0, l.ingestionFailed(sourceExplorer, address, explorer.ErrMissingAPIKey)
	}

	var startBlock uint64
	if req.StartBlock != nil {
		startBlock = *req.StartBlock
	} else {
		startBlock, _, err = l.repo.LatestBlockFor(ctx, address)
		if err != nil {
			return 0, l.ingestionFailed(sourceExplorer, address, err)
		}
	}

	fetched, err := l.explorer.FetchTokenTransfers(ctx, explorer.Params{
		APIKey:     apiKey,
		Address:    address,
		StartBlock: startBlock,
		EndBlock:   req.EndBlock,
		Page:       req.Page,
		Offset:     req.Offset,
	})
	if err != nil {
		return 0, l.ingestionFailed(sourceExplorer, address, err)
	}

	cachedAt := TimeNow().UnixMilli()
	transfers := make([]repository.CachedTransfer, 0, len(fetched))
	for _, t := range fetched {
		transfer, err := l.fromExplorer(t, cachedAt)
		if err != nil {
			return 0, l.ingestionFailed(sourceExplorer, address, err)
		}
		transfers = append(transfers, transfer)
	}

	inserted, err := l.cacheTransfers(ctx, sourceExplorer, transfers)
	if err != nil {
		return 0, l.ingestionFailed(sourceExplorer, address, err)
	}

	l.logs.Infow("explorer transfers cached",
		"address", address,
		"fetched", len(fetched),
		"inserted", inserted,
		"startBlock", startBlock,
	)
	return inserted, nil
}

// SyncChain reads Transfer logs for the address straight from the node over the last
// days worth of blocks and caches the ones not seen before.
func (l *Ledger) SyncChain(ctx context.Context, address string, days int) (int, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	if !search.IsAddress(address) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if days <= 0 {
		days = DefaultChainDays
	}

	latest, err := l.chain.LatestBlock(ctx)
	if err != nil {
		return 0, l.ingestionFailed(sourceChain, address, err)
	}

	window := uint64(days) * 86400 / l.config.BlockTimeSeconds
	var fromBlock uint64
	if latest > window {
		fromBlock = latest - window
	}

	logs, err := l.chain.FetchTransferLogs(ctx, address, fromBlock, latest)
	if err != nil {
		return 0, l.ingestionFailed(sourceChain, address, err)
	}

	seen := make(map[string]struct{}, len(logs))
	fresh := make([]ethereum.TransferLog, 0, len(logs))
	blocks := make([]uint64, 0, len(logs))
	for _, log := range logs {
		hash := strings.ToLower(log.TxHash)
		if _, ok := seen[hash]; ok {
			continue
		}
		seen[hash] = struct{}{}

		exists, err := l.repo.TransferExists(ctx, hash)
		if err != nil {
			return 0, l.ingestionFailed(sourceChain, address, err)
		}
		if exists {
			metrics.TransfersSkipped.WithLabelValues(sourceChain).Inc()
			continue
		}

		fresh = append(fresh, log)
		blocks = append(blocks, log.BlockNumber)
	}

	if len(fresh) == 0 {
		l.logs.Infow("chain transfers cached", "address", address, "fetched", len(logs), "inserted", 0)
		return 0, nil
	}

	timestamps, err := l.chain.BlockTimestamps(ctx, blocks)
	if err != nil {
		return 0, l.ingestionFailed(sourceChain, address, err)
	}

	cachedAt := TimeNow().UnixMilli()
	transfers := make([]repository.CachedTransfer, 0, len(fresh))
	for _, log := range fresh {
		transfers = append(transfers, repository.CachedTransfer{
			TransactionHash: strings.ToLower(log.TxHash),
			BlockNumber:     log.BlockNumber,
			Timestamp:       timestamps[log.BlockNumber],
			From:            strings.ToLower(log.From),
			To:              strings.ToLower(log.To),
			Value:           log.Value,
			TokenSymbol:     l.config.Token.Symbol,
			TokenDecimals:   l.config.Token.Decimals,
			GasUsed:         "0",
			GasPrice:        "0",
			CachedAt:        cachedAt,
		})
	}

	inserted, err := l.cacheTransfers(ctx, sourceChain, transfers)
	if err != nil {
		return 0, l.ingestionFailed(sourceChain, address, err)
	}

	l.logs.Infow("chain transfers cached",
		"address", address,
		"fromBlock", fromBlock,
		"toBlock", latest,
		"fetched", len(logs),
		"inserted", inserted,
	)
	return inserted, nil
}

// cacheTransfers inserts in the given order. A hash that is already cached counts as
// present, never as a failure.
func (l *Ledger) cacheTransfers(ctx context.Context, source string, transfers []repository.CachedTransfer) (int, error) {
	inserted := 0
	for _, t := range transfers {
		ok, err := l.repo.InsertTransfer(ctx, t)
		if err != nil {
			return inserted, err
		}
		if !ok {
			metrics.TransfersSkipped.WithLabelValues(source).Inc()
			continue
		}
		inserted++
	}

	metrics.TransfersInserted.WithLabelValues(source).Add(float64(inserted))
	return inserted, nil
}

func (l *Ledger) fromExplorer(t explorer.Transfer, cachedAt int64) (repository.CachedTransfer, error) {
	block, err := t.Block()
	if err != nil {
		return repository.CachedTransfer{}, err
	}
	ts, err := t.Timestamp()
	if err != nil {
		return repository.CachedTransfer{}, err
	}
	if _, err := search.ParseUnits(t.Value); err != nil {
		return repository.CachedTransfer{}, fmt.Errorf("transfer %s: %w", t.Hash, err)
	}

	decimals := l.config.Token.Decimals
	if t.TokenDecimal != "" {
		if decimals, err = t.Decimals(); err != nil {
			return repository.CachedTransfer{}, err
		}
	}

	symbol := t.TokenSymbol
	if symbol == "" {
		symbol = l.config.Token.Symbol
	}

	return repository.CachedTransfer{
		TransactionHash: strings.ToLower(t.Hash),
		BlockNumber:     block,
		Timestamp:       ts,
		From:            strings.ToLower(t.From),
		To:              strings.ToLower(t.To),
		Value:           t.Value,
		TokenSymbol:     symbol,
		TokenDecimals:   decimals,
		GasUsed:         t.GasUsed,
		GasPrice:        t.GasPrice,
		CachedAt:        cachedAt,
	}, nil
}

func (l *Ledger) ingestionFailed(source, address string, err error) error {
	metrics.IngestionErrors.WithLabelValues(source).Inc()
	l.logs.Errorw("transfer ingestion failed", "source", source, "address", address, "error", err)
	return err
}
