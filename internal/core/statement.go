package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strings"
	"time"
)

// ExportCSV renders the transfers matching query as a spreadsheet statement, one row per
// transfer with its memo and tags.
func (l *Ledger) ExportCSV(ctx context.Context, user, query string) ([]byte, error) {
	result, err := l.Search(ctx, user, query, math.MaxInt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"Date",
		"Transaction Hash",
		"From",
		"To",
		fmt.Sprintf("Amount (%s)", l.config.Token.Symbol),
		"Memo",
		"Tags",
		"Explorer Link",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, t := range result.Transfers {
		var memo, tags string
		if t.Annotation != nil {
			memo = t.Annotation.MemoText
			tags = strings.Join(t.Annotation.Tags, "; ")
		}

		err := w.Write([]string{
			time.Unix(t.Timestamp, 0).UTC().Format(time.RFC3339),
			t.TransactionHash,
			t.From,
			t.To,
			t.Amount,
			memo,
			tags,
			l.config.TxLinkBase + t.TransactionHash,
		})
		if err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	l.logs.Infow("csv statement exported", "user", user, "rows", len(result.Transfers))
	return buf.Bytes(), nil
}
