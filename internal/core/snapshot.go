package core

import (
	"context"
	"encoding/json"
	"flowledger/internal/metrics"
	"flowledger/internal/repository"
	"flowledger/internal/search"
	"fmt"
)

// Export serializes every collection into one versioned document.
func (l *Ledger) Export(ctx context.Context) ([]byte, error) {
	snapshot, err := l.repo.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	snapshot.ExportedAt = TimeNow().UnixMilli()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	l.logs.Infow("snapshot exported",
		"transfers", len(snapshot.Transfers),
		"annotations", len(snapshot.Annotations),
		"workers", len(snapshot.Workers),
		"payrollRuns", len(snapshot.PayrollRuns),
		"payRequests", len(snapshot.PayRequests),
		"settings", len(snapshot.UserSettings),
	)
	return data, nil
}

// Import appends a snapshot produced by Export. The whole document is validated before
// anything is written, and nothing local is overwritten. Rows skipped because their
// unique key already exists are reported in the stats.
func (l *Ledger) Import(ctx context.Context, data []byte) (repository.ImportStats, error) {
	var snapshot repository.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return repository.ImportStats{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := validateSnapshot(snapshot); err != nil {
		return repository.ImportStats{}, err
	}

	stats, err := l.repo.Import(ctx, snapshot)
	if err != nil {
		l.logs.Errorw("snapshot import failed", "error", err)
		return repository.ImportStats{}, fmt.Errorf("import: %w", err)
	}

	if dup := stats.Duplicates(); dup > 0 {
		metrics.ImportDuplicates.Add(float64(dup))
		l.logs.Warnw("snapshot rows skipped on existing keys",
			"transfers", stats.DuplicateTransfers,
			"annotations", stats.DuplicateAnnotations,
			"payrollRuns", stats.DuplicatePayrollRuns,
			"payRequests", stats.DuplicatePayRequests,
			"settings", stats.DuplicateUserSettings,
		)
	}

	l.logs.Infow("snapshot imported", "stats", stats)
	return stats, nil
}

// Clear wipes every collection. Only an earlier export can bring the data back.
func (l *Ledger) Clear(ctx context.Context) error {
	if err := l.repo.Clear(ctx); err != nil {
		l.logs.Errorw("clear failed", "error", err)
		return fmt.Errorf("clear: %w", err)
	}

	l.logs.Infow("all collections cleared")
	return nil
}

func validateSnapshot(s repository.Snapshot) error {
	if s.Version == 0 {
		return fmt.Errorf("%w: missing version", ErrInvalidSnapshot)
	}
	if s.Version < 1 || s.Version > repository.SchemaVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, s.Version)
	}

	for i, t := range s.Transfers {
		if !search.IsTxHash(t.TransactionHash) {
			return fmt.Errorf("%w: transfer %d has hash %q", ErrInvalidSnapshot, i, t.TransactionHash)
		}
		if _, err := search.ParseUnits(t.Value); err != nil {
			return fmt.Errorf("%w: transfer %d: %v", ErrInvalidSnapshot, i, err)
		}
	}

	for i, a := range s.Annotations {
		if _, err := NewReference(a.ReferenceType, a.ReferenceID); err != nil {
			return fmt.Errorf("%w: annotation %d: %v", ErrInvalidSnapshot, i, err)
		}
	}

	for i, st := range s.UserSettings {
		if st.Key == "" {
			return fmt.Errorf("%w: setting %d has no key", ErrInvalidSnapshot, i)
		}
	}

	return nil
}
