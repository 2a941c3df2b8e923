package core

import (
	"context"
	"errors"
	"flowledger/internal/repository"
	"flowledger/internal/search"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// SearchTransfers returns the user's cached transfers matching every present filter,
// newest first, truncated to limit after filtering.
func (l *Ledger) SearchTransfers(ctx context.Context, user string, filters search.Filters, limit int) ([]repository.CachedTransfer, error) {
	user = strings.ToLower(strings.TrimSpace(user))
	if !search.IsAddress(user) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, user)
	}
	if err := validateThresholds(filters); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	candidates, err := l.repo.SearchTransfers(ctx, repository.TransferQuery{
		User:      user,
		Address:   filters.Address,
		TxHash:    filters.TxHash,
		Since:     filters.SinceUnix(),
		Until:     filters.UntilUnix(),
		Direction: string(filters.Direction),
	})
	if err != nil {
		return nil, fmt.Errorf("search transfers: %w", err)
	}

	results := make([]repository.CachedTransfer, 0, min(len(candidates), limit))
	for _, t := range candidates {
		if len(results) == limit {
			break
		}

		ok, err := filters.MatchAmount(t.Value, t.TokenDecimals)
		if err != nil {
			l.logs.Warnw("skipping transfer with unreadable amount", "txHash", t.TransactionHash, "value", t.Value)
			continue
		}
		if ok {
			results = append(results, t)
		}
	}

	return results, nil
}

// SearchAnnotations returns annotations matching the tag and hash filters and, when
// freeText is set, containing it in the memo or a tag.
func (l *Ledger) SearchAnnotations(ctx context.Context, filters search.Filters, freeText string) ([]repository.Annotation, error) {
	var (
		annotations []repository.Annotation
		err         error
	)
	if filters.TxHash != "" {
		annotations, err = l.repo.ListAnnotations(ctx, string(ReferenceTxHash), filters.TxHash)
	} else {
		annotations, err = l.repo.ListAnnotations(ctx, "", "")
	}
	if err != nil {
		return nil, fmt.Errorf("search annotations: %w", err)
	}

	results := make([]repository.Annotation, 0, len(annotations))
	for _, a := range annotations {
		if filters.Tag != "" && !search.MatchTag(a.Tags, filters.Tag) {
			continue
		}
		if freeText != "" && !search.MatchText(a.MemoText, a.Tags, freeText) {
			continue
		}
		results = append(results, a)
	}

	return results, nil
}

// Search parses a raw query and runs both searches with it. Transfers come back with
// their display amount and annotation attached.
func (l *Ledger) Search(ctx context.Context, user, query string, limit int) (SearchResult, error) {
	filters, freeText, err := search.Parse(query)
	if err != nil {
		return SearchResult{}, err
	}

	transfers, err := l.SearchTransfers(ctx, user, filters, limit)
	if err != nil {
		return SearchResult{}, err
	}

	annotations, err := l.SearchAnnotations(ctx, filters, freeText)
	if err != nil {
		return SearchResult{}, err
	}

	all, err := l.repo.ListAnnotations(ctx, "", "")
	if err != nil {
		return SearchResult{}, fmt.Errorf("load annotations: %w", err)
	}
	byHash := make(map[string]repository.Annotation, len(all))
	for _, a := range all {
		if a.ReferenceType == string(ReferenceTxHash) {
			byHash[a.ReferenceID] = a
		}
	}

	views := make([]TransferView, 0, len(transfers))
	for _, t := range transfers {
		views = append(views, l.view(t, byHash))
	}

	return SearchResult{
		Filters:     filters,
		FreeText:    freeText,
		Transfers:   views,
		Annotations: annotations,
	}, nil
}

// Summary totals every cached transfer the address sent or received.
func (l *Ledger) Summary(ctx context.Context, address string) (Summary, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	if !search.IsAddress(address) {
		return Summary{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	transfers, err := l.repo.SearchTransfers(ctx, repository.TransferQuery{User: address})
	if err != nil {
		return Summary{}, fmt.Errorf("load transfers: %w", err)
	}

	summary := Summary{Address: address, TransferCount: len(transfers)}
	received, sent := new(uint256.Int), new(uint256.Int)
	for _, t := range transfers {
		value, err := search.ParseUnits(t.Value)
		if err != nil {
			l.logs.Warnw("skipping transfer with unreadable amount", "txHash", t.TransactionHash, "value", t.Value)
			continue
		}
		if t.To == address {
			received.Add(received, value)
			summary.ReceivedCount++
		}
		if t.From == address {
			sent.Add(sent, value)
			summary.SentCount++
		}
	}

	if summary.TotalReceived, err = search.FormatUnits(received.Dec(), l.config.Token.Decimals); err != nil {
		return Summary{}, err
	}
	if summary.TotalSent, err = search.FormatUnits(sent.Dec(), l.config.Token.Decimals); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

func (l *Ledger) view(t repository.CachedTransfer, annotations map[string]repository.Annotation) TransferView {
	v := TransferView{CachedTransfer: t}
	if amount, err := search.FormatUnits(t.Value, t.TokenDecimals); err == nil {
		v.Amount = amount
	}
	if a, ok := annotations[t.TransactionHash]; ok {
		v.Annotation = &a
	}
	return v
}

func validateThresholds(filters search.Filters) error {
	for _, threshold := range []string{filters.MinAmount, filters.MaxAmount} {
		if threshold == "" {
			continue
		}
		_, err := search.ToUnits(threshold, 0, false)
		if err != nil && !errors.Is(err, search.ErrAmountOverflow) {
			return fmt.Errorf("%w: %v", search.ErrInvalidQuery, err)
		}
	}
	return nil
}
