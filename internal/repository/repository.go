package repository

import (
	"context"
	"errors"
	"flowledger/internal/db"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTransferNotFound   = errors.New("transfer not found")
	ErrAnnotationNotFound = errors.New("annotation not found")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrPayrollNotFound    = errors.New("payroll run not found")
	ErrPayrollExists      = errors.New("payroll run already exists")
	ErrPayRequestNotFound = errors.New("pay request not found")
)

// TransferQuery narrows cached transfers in the store. Empty fields do not filter.
type TransferQuery struct {
	User      string
	Address   string
	TxHash    string
	Since     *int64
	Until     *int64
	Direction string
}

type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

func (r *LedgerRepository) Migrate(ctx context.Context) error {
	err := r.db.MigrateModels(
		&CachedTransfer{},
		&Annotation{},
		&Worker{},
		&PayrollRun{},
		&PayRequest{},
		&UserSetting{},
		&SchemaMeta{},
	)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	count, err := r.db.Count(ctx, &SchemaMeta{}, db.Query{})
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := r.db.Insert(ctx, &SchemaMeta{Version: SchemaVersion}); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}

	return nil
}

func (r *LedgerRepository) SchemaVersion(ctx context.Context) (int, error) {
	var meta SchemaMeta
	err := r.db.GetOneBy(ctx, db.Query{Order: "version desc"}, &meta)
	if err != nil {
		return 0, fmt.Errorf("get schema version: %w", err)
	}
	return meta.Version, nil
}

// InsertTransfer stores the transfer unless its hash is already cached. The boolean
// reports whether a row was written.
func (r *LedgerRepository) InsertTransfer(ctx context.Context, transfer CachedTransfer) (bool, error) {
	transfer.TransactionHash = strings.ToLower(transfer.TransactionHash)
	transfer.From = strings.ToLower(transfer.From)
	transfer.To = strings.ToLower(transfer.To)

	n, err := r.db.InsertIgnoreConflicts(ctx, &transfer)
	if err != nil {
		return false, fmt.Errorf("insert transfer %s: %w", transfer.TransactionHash, err)
	}

	return n > 0, nil
}

func (r *LedgerRepository) TransferExists(ctx context.Context, txHash string) (bool, error) {
	count, err := r.db.Count(ctx, &CachedTransfer{}, db.Query{
		Where: "transaction_hash = ?",
		Args:  []any{strings.ToLower(txHash)},
	})
	if err != nil {
		return false, fmt.Errorf("check transfer %s: %w", txHash, err)
	}
	return count > 0, nil
}

func (r *LedgerRepository) GetTransferByHash(ctx context.Context, txHash string) (CachedTransfer, error) {
	var transfer CachedTransfer

	err := r.db.GetOneBy(ctx, db.Query{
		Where: "transaction_hash = ?",
		Args:  []any{strings.ToLower(txHash)},
	}, &transfer)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return CachedTransfer{}, ErrTransferNotFound
		}
		return CachedTransfer{}, fmt.Errorf("get transfer by hash: %w", err)
	}

	return transfer, nil
}

// LatestBlockFor returns the highest cached block number where address is sender or
// recipient. The boolean is false when nothing is cached for the address.
func (r *LedgerRepository) LatestBlockFor(ctx context.Context, address string) (uint64, bool, error) {
	address = strings.ToLower(address)

	latest, ok, err := r.db.MaxOf(ctx, &CachedTransfer{}, "block_number", db.Query{
		Where: "from_address = ? OR to_address = ?",
		Args:  []any{address, address},
	})
	if err != nil {
		return 0, false, fmt.Errorf("latest block for %s: %w", address, err)
	}

	return uint64(latest), ok, nil
}

// SearchTransfers returns the matching transfers newest first, ties broken by insertion order.
func (r *LedgerRepository) SearchTransfers(ctx context.Context, q TransferQuery) ([]CachedTransfer, error) {
	var (
		where []string
		args  []any
	)

	if q.User != "" {
		user := strings.ToLower(q.User)
		where = append(where, "(from_address = ? OR to_address = ?)")
		args = append(args, user, user)

		switch q.Direction {
		case "in":
			where = append(where, "to_address = ?")
			args = append(args, user)
		case "out":
			where = append(where, "from_address = ?")
			args = append(args, user)
		}
	}
	if q.Address != "" {
		address := strings.ToLower(q.Address)
		where = append(where, "(from_address = ? OR to_address = ?)")
		args = append(args, address, address)
	}
	if q.TxHash != "" {
		where = append(where, "transaction_hash = ?")
		args = append(args, strings.ToLower(q.TxHash))
	}
	if q.Since != nil {
		where = append(where, "block_time >= ?")
		args = append(args, *q.Since)
	}
	if q.Until != nil {
		where = append(where, "block_time <= ?")
		args = append(args, *q.Until)
	}

	transfers := []CachedTransfer{}
	err := r.db.GetAllBy(ctx, db.Query{
		Where: strings.Join(where, " AND "),
		Args:  args,
		Order: "block_time desc, id asc",
	}, &transfers)
	if err != nil {
		return transfers, fmt.Errorf("search transfers: %w", err)
	}

	return transfers, nil
}

func (r *LedgerRepository) GetAnnotation(ctx context.Context, referenceType, referenceID string) (Annotation, error) {
	var annotation Annotation

	err := r.db.GetOneBy(ctx, db.Query{
		Where: "reference_type = ? AND reference_id = ?",
		Args:  []any{referenceType, strings.ToLower(referenceID)},
	}, &annotation)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Annotation{}, ErrAnnotationNotFound
		}
		return Annotation{}, fmt.Errorf("get annotation: %w", err)
	}

	return annotation, nil
}

// UpsertAnnotation inserts the annotation or, when one already exists for the same
// reference, overwrites its memo, tags, metadata and update time. The creation time and
// identity of an existing row are kept. It returns the stored row.
func (r *LedgerRepository) UpsertAnnotation(ctx context.Context, annotation Annotation) (Annotation, error) {
	annotation.ID = 0
	annotation.ReferenceID = strings.ToLower(annotation.ReferenceID)
	if annotation.Tags == nil {
		annotation.Tags = []string{}
	}

	var stored Annotation
	err := r.db.Transaction(ctx, func(tx *db.GormDB) error {
		err := tx.Upsert(ctx, &annotation,
			[]string{"reference_type", "reference_id"},
			[]string{"memo_text", "tags", "metadata", "metadata_cid", "updated_at"},
		)
		if err != nil {
			return err
		}

		return tx.GetOneBy(ctx, db.Query{
			Where: "reference_type = ? AND reference_id = ?",
			Args:  []any{annotation.ReferenceType, annotation.ReferenceID},
		}, &stored)
	})
	if err != nil {
		return Annotation{}, fmt.Errorf("upsert annotation: %w", err)
	}

	return stored, nil
}

// ListAnnotations returns annotations, optionally restricted to one reference.
func (r *LedgerRepository) ListAnnotations(ctx context.Context, referenceType, referenceID string) ([]Annotation, error) {
	q := db.Query{Order: "updated_at desc, id asc"}
	if referenceType != "" {
		q.Where = "reference_type = ? AND reference_id = ?"
		q.Args = []any{referenceType, strings.ToLower(referenceID)}
	}

	annotations := []Annotation{}
	if err := r.db.GetAllBy(ctx, q, &annotations); err != nil {
		return annotations, fmt.Errorf("list annotations: %w", err)
	}

	return annotations, nil
}

func (r *LedgerRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var setting UserSetting

	err := r.db.GetOneBy(ctx, db.Query{Where: "setting_key = ?", Args: []any{key}}, &setting)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}

	return setting.Value, nil
}

func (r *LedgerRepository) SetSetting(ctx context.Context, key, value string) error {
	err := r.db.Upsert(ctx, &UserSetting{Key: key, Value: value}, []string{"setting_key"}, []string{"value"})
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (r *LedgerRepository) DeleteSetting(ctx context.Context, key string) error {
	n, err := r.db.Delete(ctx, &UserSetting{}, db.Query{Where: "setting_key = ?", Args: []any{key}})
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	if n == 0 {
		return ErrSettingNotFound
	}
	return nil
}

func (r *LedgerRepository) CreateWorker(ctx context.Context, worker *Worker) error {
	worker.Address = strings.ToLower(worker.Address)
	if err := r.db.Insert(ctx, worker); err != nil {
		return fmt.Errorf("create worker: %w", err)
	}
	return nil
}

func (r *LedgerRepository) UpdateWorker(ctx context.Context, worker *Worker) error {
	if err := r.db.Update(ctx, worker); err != nil {
		return fmt.Errorf("update worker %d: %w", worker.ID, err)
	}
	return nil
}

func (r *LedgerRepository) DeleteWorker(ctx context.Context, id uint) error {
	n, err := r.db.Delete(ctx, &Worker{}, db.Query{Where: "id = ?", Args: []any{id}})
	if err != nil {
		return fmt.Errorf("delete worker %d: %w", id, err)
	}
	if n == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

func (r *LedgerRepository) GetWorker(ctx context.Context, id uint) (Worker, error) {
	return r.getWorker(ctx, db.Query{Where: "id = ?", Args: []any{id}})
}

func (r *LedgerRepository) GetWorkerByAddress(ctx context.Context, address string) (Worker, error) {
	return r.getWorker(ctx, db.Query{Where: "address = ?", Args: []any{strings.ToLower(address)}})
}

func (r *LedgerRepository) getWorker(ctx context.Context, q db.Query) (Worker, error) {
	var worker Worker
	if err := r.db.GetOneBy(ctx, q, &worker); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Worker{}, ErrWorkerNotFound
		}
		return Worker{}, fmt.Errorf("get worker: %w", err)
	}
	return worker, nil
}

func (r *LedgerRepository) ListWorkers(ctx context.Context) ([]Worker, error) {
	workers := []Worker{}
	if err := r.db.GetAllBy(ctx, db.Query{Order: "name asc, id asc"}, &workers); err != nil {
		return workers, fmt.Errorf("list workers: %w", err)
	}
	return workers, nil
}

func (r *LedgerRepository) CreatePayrollRun(ctx context.Context, run *PayrollRun) error {
	run.Employer = strings.ToLower(run.Employer)
	n, err := r.db.InsertIgnoreConflicts(ctx, run)
	if err != nil {
		return fmt.Errorf("create payroll run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPayrollExists, run.RunID)
	}
	return nil
}

func (r *LedgerRepository) GetPayrollRun(ctx context.Context, runID string) (PayrollRun, error) {
	var run PayrollRun
	err := r.db.GetOneBy(ctx, db.Query{Where: "run_id = ?", Args: []any{runID}}, &run)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return PayrollRun{}, ErrPayrollNotFound
		}
		return PayrollRun{}, fmt.Errorf("get payroll run %q: %w", runID, err)
	}
	return run, nil
}

func (r *LedgerRepository) ListPayrollRuns(ctx context.Context, filter PayrollFilter) ([]PayrollRun, error) {
	var (
		where []string
		args  []any
	)
	if filter.Employer != "" {
		where = append(where, "employer = ?")
		args = append(args, strings.ToLower(filter.Employer))
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}

	runs := []PayrollRun{}
	err := r.db.GetAllBy(ctx, db.Query{
		Where: strings.Join(where, " AND "),
		Args:  args,
		Order: "created_at desc, id desc",
	}, &runs)
	if err != nil {
		return runs, fmt.Errorf("list payroll runs: %w", err)
	}
	return runs, nil
}

func (r *LedgerRepository) UpdatePayrollRun(ctx context.Context, run *PayrollRun) error {
	if err := r.db.Update(ctx, run); err != nil {
		return fmt.Errorf("update payroll run %q: %w", run.RunID, err)
	}
	return nil
}

func (r *LedgerRepository) CreatePayRequest(ctx context.Context, request *PayRequest) error {
	request.ID = strings.ToLower(request.ID)
	request.WorkerAddress = strings.ToLower(request.WorkerAddress)
	request.EmployerAddress = strings.ToLower(request.EmployerAddress)
	if err := r.db.Insert(ctx, request); err != nil {
		return fmt.Errorf("create pay request: %w", err)
	}
	return nil
}

func (r *LedgerRepository) GetPayRequest(ctx context.Context, id string) (PayRequest, error) {
	var request PayRequest
	err := r.db.GetOneBy(ctx, db.Query{Where: "id = ?", Args: []any{strings.ToLower(id)}}, &request)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return PayRequest{}, ErrPayRequestNotFound
		}
		return PayRequest{}, fmt.Errorf("get pay request %q: %w", id, err)
	}
	return request, nil
}

func (r *LedgerRepository) ListPayRequests(ctx context.Context, filter PayRequestFilter) ([]PayRequest, error) {
	var (
		where []string
		args  []any
	)
	if filter.Worker != "" {
		where = append(where, "worker_address = ?")
		args = append(args, strings.ToLower(filter.Worker))
	}
	if filter.Employer != "" {
		where = append(where, "employer_address = ?")
		args = append(args, strings.ToLower(filter.Employer))
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}

	requests := []PayRequest{}
	err := r.db.GetAllBy(ctx, db.Query{
		Where: strings.Join(where, " AND "),
		Args:  args,
		Order: "created_at desc, id asc",
	}, &requests)
	if err != nil {
		return requests, fmt.Errorf("list pay requests: %w", err)
	}
	return requests, nil
}

func (r *LedgerRepository) UpdatePayRequest(ctx context.Context, request *PayRequest) error {
	if err := r.db.Update(ctx, request); err != nil {
		return fmt.Errorf("update pay request %q: %w", request.ID, err)
	}
	return nil
}

// Export reads every collection inside one transaction so the snapshot never mixes
// states across a concurrent write.
func (r *LedgerRepository) Export(ctx context.Context) (Snapshot, error) {
	snapshot := Snapshot{
		Version:      SchemaVersion,
		Transfers:    []CachedTransfer{},
		Annotations:  []Annotation{},
		Workers:      []Worker{},
		PayrollRuns:  []PayrollRun{},
		PayRequests:  []PayRequest{},
		UserSettings: []UserSetting{},
	}

	err := r.db.Transaction(ctx, func(tx *db.GormDB) error {
		byID := db.Query{Order: "id asc"}
		for _, dest := range []any{
			&snapshot.Transfers,
			&snapshot.Annotations,
			&snapshot.Workers,
			&snapshot.PayrollRuns,
			&snapshot.PayRequests,
			&snapshot.UserSettings,
		} {
			if err := tx.GetAllBy(ctx, byID, dest); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("export collections: %w", err)
	}

	return snapshot, nil
}

// Import appends every snapshot row inside one transaction. Local rows are never
// overwritten: transfers, annotations, payroll runs, pay requests and settings whose
// unique key (hash, reference, run id, request id, setting key) already exists are
// skipped and counted in the Duplicate* stats. Workers have no business key beyond
// their row id and are always appended.
func (r *LedgerRepository) Import(ctx context.Context, snapshot Snapshot) (ImportStats, error) {
	var stats ImportStats

	err := r.db.Transaction(ctx, func(tx *db.GormDB) error {
		for _, t := range snapshot.Transfers {
			t.ID = 0
			t.TransactionHash = strings.ToLower(t.TransactionHash)
			t.From = strings.ToLower(t.From)
			t.To = strings.ToLower(t.To)
			if err := insertCounted(ctx, tx, &t, &stats.Transfers, &stats.DuplicateTransfers); err != nil {
				return fmt.Errorf("import transfer %s: %w", t.TransactionHash, err)
			}
		}

		for _, a := range snapshot.Annotations {
			a.ID = 0
			a.ReferenceID = strings.ToLower(a.ReferenceID)
			if a.Tags == nil {
				a.Tags = []string{}
			}
			if err := insertCounted(ctx, tx, &a, &stats.Annotations, &stats.DuplicateAnnotations); err != nil {
				return fmt.Errorf("import annotation %s/%s: %w", a.ReferenceType, a.ReferenceID, err)
			}
		}

		for _, w := range snapshot.Workers {
			w.ID = 0
			w.Address = strings.ToLower(w.Address)
			if err := tx.Insert(ctx, &w); err != nil {
				return fmt.Errorf("import worker %s: %w", w.Address, err)
			}
			stats.Workers++
		}

		for _, p := range snapshot.PayrollRuns {
			p.ID = 0
			if p.RunID == "" {
				p.RunID = uuid.NewString()
			}
			if err := insertCounted(ctx, tx, &p, &stats.PayrollRuns, &stats.DuplicatePayrollRuns); err != nil {
				return fmt.Errorf("import payroll run %s: %w", p.RunID, err)
			}
		}

		for _, p := range snapshot.PayRequests {
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			p.ID = strings.ToLower(p.ID)
			if err := insertCounted(ctx, tx, &p, &stats.PayRequests, &stats.DuplicatePayRequests); err != nil {
				return fmt.Errorf("import pay request %s: %w", p.ID, err)
			}
		}

		for _, s := range snapshot.UserSettings {
			s.ID = 0
			if err := insertCounted(ctx, tx, &s, &stats.UserSettings, &stats.DuplicateUserSettings); err != nil {
				return fmt.Errorf("import setting %q: %w", s.Key, err)
			}
		}

		return nil
	})
	if err != nil {
		return ImportStats{}, fmt.Errorf("import snapshot: %w", err)
	}

	return stats, nil
}

// Clear deletes every row of every collection in one transaction. The schema marker stays.
func (r *LedgerRepository) Clear(ctx context.Context) error {
	err := r.db.Transaction(ctx, func(tx *db.GormDB) error {
		return tx.DeleteAll(ctx,
			&CachedTransfer{},
			&Annotation{},
			&Worker{},
			&PayrollRun{},
			&PayRequest{},
			&UserSetting{},
		)
	})
	if err != nil {
		return fmt.Errorf("clear collections: %w", err)
	}
	return nil
}

func insertCounted(ctx context.Context, tx *db.GormDB, record any, inserted, skipped *int) error {
	n, err := tx.InsertIgnoreConflicts(ctx, record)
	if err != nil {
		return err
	}
	if n == 0 {
		*skipped++
		return nil
	}
	*inserted++
	return nil
}
