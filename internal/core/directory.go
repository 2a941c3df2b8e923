package core

import (
	"context"
	"errors"
	"flowledger/internal/repository"
	"flowledger/internal/search"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

func (l *Ledger) GetSetting(ctx context.Context, key string) (string, error) {
	value, err := l.repo.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
		}
		return "", err
	}
	return value, nil
}

func (l *Ledger) SetSetting(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidSetting)
	}
	if err := l.repo.SetSetting(ctx, key, value); err != nil {
		return err
	}
	l.logs.Infow("setting saved", "key", key)
	return nil
}

func (l *Ledger) DeleteSetting(ctx context.Context, key string) error {
	err := l.repo.DeleteSetting(ctx, key)
	if errors.Is(err, repository.ErrSettingNotFound) {
		return fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	return err
}

func (l *Ledger) CreateWorker(ctx context.Context, input WorkerInput) (repository.Worker, error) {
	address := strings.ToLower(strings.TrimSpace(input.Address))
	if !search.IsAddress(address) {
		return repository.Worker{}, fmt.Errorf("%w: %q", ErrInvalidAddress, input.Address)
	}

	_, err := l.repo.GetWorkerByAddress(ctx, address)
	switch {
	case err == nil:
		return repository.Worker{}, fmt.Errorf("%w: %s", ErrWorkerExists, address)
	case !errors.Is(err, repository.ErrWorkerNotFound):
		return repository.Worker{}, err
	}

	now := TimeNow().UnixMilli()
	worker := repository.Worker{
		Address:   address,
		Name:      input.Name,
		Email:     input.Email,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := l.repo.CreateWorker(ctx, &worker); err != nil {
		return repository.Worker{}, err
	}

	l.logs.Infow("worker created", "address", address, "id", worker.ID)
	return worker, nil
}

// UpdateWorker changes a worker's contact details. The address is fixed at creation.
func (l *Ledger) UpdateWorker(ctx context.Context, id uint, input WorkerInput) (repository.Worker, error) {
	worker, err := l.repo.GetWorker(ctx, id)
	if err != nil {
		return repository.Worker{}, notFound(err)
	}

	worker.Name = input.Name
	worker.Email = input.Email
	worker.Notes = input.Notes
	worker.UpdatedAt = TimeNow().UnixMilli()

	if err := l.repo.UpdateWorker(ctx, &worker); err != nil {
		return repository.Worker{}, err
	}
	return worker, nil
}

func (l *Ledger) DeleteWorker(ctx context.Context, id uint) error {
	return notFound(l.repo.DeleteWorker(ctx, id))
}

func (l *Ledger) ListWorkers(ctx context.Context) ([]repository.Worker, error) {
	return l.repo.ListWorkers(ctx)
}

// CreatePayrollRun records a batch of payments. The run id is the submitting transaction
// hash when known, otherwise a generated one.
func (l *Ledger) CreatePayrollRun(ctx context.Context, input PayrollInput) (repository.PayrollRun, error) {
	employer := strings.ToLower(strings.TrimSpace(input.Employer))
	if !search.IsAddress(employer) {
		return repository.PayrollRun{}, fmt.Errorf("%w: employer %q", ErrInvalidAddress, input.Employer)
	}

	status := input.Status
	if status == "" {
		status = PayrollPending
	}
	if _, ok := payrollStatuses[status]; !ok {
		return repository.PayrollRun{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	total := new(uint256.Int)
	payments := make([]repository.PayrollPayment, 0, len(input.Payments))
	for _, p := range input.Payments {
		worker := strings.ToLower(strings.TrimSpace(p.Worker))
		if !search.IsAddress(worker) {
			return repository.PayrollRun{}, fmt.Errorf("%w: worker %q", ErrInvalidAddress, p.Worker)
		}
		amount, err := search.ParseUnits(p.Amount)
		if err != nil {
			return repository.PayrollRun{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		total.Add(total, amount)

		name := p.WorkerName
		if name == "" {
			if w, err := l.repo.GetWorkerByAddress(ctx, worker); err == nil {
				name = w.Name
			}
		}

		payments = append(payments, repository.PayrollPayment{
			Worker:     worker,
			WorkerName: name,
			Amount:     amount.Dec(),
			Status:     PaymentPending,
			TxHash:     strings.ToLower(p.TxHash),
		})
	}

	runID := strings.ToLower(strings.TrimSpace(input.RunID))
	if runID == "" {
		runID = uuid.NewString()
	}

	now := TimeNow().UnixMilli()
	run := repository.PayrollRun{
		RunID:       runID,
		Employer:    employer,
		Payments:    payments,
		PayPeriod:   input.PayPeriod,
		TotalAmount: total.Dec(),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := l.repo.CreatePayrollRun(ctx, &run); err != nil {
		if errors.Is(err, repository.ErrPayrollExists) {
			return repository.PayrollRun{}, fmt.Errorf("%w: %s", ErrPayrollRunExists, runID)
		}
		return repository.PayrollRun{}, err
	}

	l.logs.Infow("payroll run created", "runId", runID, "employer", employer, "payments", len(payments), "total", run.TotalAmount)
	return run, nil
}

func (l *Ledger) GetPayrollRun(ctx context.Context, runID string) (repository.PayrollRun, error) {
	run, err := l.repo.GetPayrollRun(ctx, strings.ToLower(runID))
	return run, notFound(err)
}

func (l *Ledger) ListPayrollRuns(ctx context.Context, filter repository.PayrollFilter) ([]repository.PayrollRun, error) {
	return l.repo.ListPayrollRuns(ctx, filter)
}

// UpdatePaymentStatus sets the status of the worker's payment in a run. The run completes
// once every payment is paid or claimed.
func (l *Ledger) UpdatePaymentStatus(ctx context.Context, runID, worker, status, txHash string) (repository.PayrollRun, error) {
	if _, ok := paymentStatuses[status]; !ok {
		return repository.PayrollRun{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	run, err := l.repo.GetPayrollRun(ctx, strings.ToLower(runID))
	if err != nil {
		return repository.PayrollRun{}, notFound(err)
	}

	worker = strings.ToLower(worker)
	idx := slices.IndexFunc(run.Payments, func(p repository.PayrollPayment) bool {
		return p.Worker == worker
	})
	if idx < 0 {
		return repository.PayrollRun{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, worker)
	}

	run.Payments[idx].Status = status
	if txHash != "" {
		run.Payments[idx].TxHash = strings.ToLower(txHash)
	}

	settled := slices.IndexFunc(run.Payments, func(p repository.PayrollPayment) bool {
		return p.Status != PaymentPaid && p.Status != PaymentClaimed
	}) < 0
	if settled && run.Status != PayrollCancelled {
		run.Status = PayrollCompleted
	}
	run.UpdatedAt = TimeNow().UnixMilli()

	if err := l.repo.UpdatePayrollRun(ctx, &run); err != nil {
		return repository.PayrollRun{}, err
	}
	return run, nil
}

func (l *Ledger) UpdatePayrollStatus(ctx context.Context, runID, status string) (repository.PayrollRun, error) {
	if _, ok := payrollStatuses[status]; !ok {
		return repository.PayrollRun{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	run, err := l.repo.GetPayrollRun(ctx, strings.ToLower(runID))
	if err != nil {
		return repository.PayrollRun{}, notFound(err)
	}

	run.Status = status
	run.UpdatedAt = TimeNow().UnixMilli()
	if err := l.repo.UpdatePayrollRun(ctx, &run); err != nil {
		return repository.PayrollRun{}, err
	}
	return run, nil
}

// CreatePayRequest records a request a worker submitted on chain, keyed by its
// transaction hash.
func (l *Ledger) CreatePayRequest(ctx context.Context, input PayRequestInput) (repository.PayRequest, error) {
	id := strings.ToLower(strings.TrimSpace(input.ID))
	if !search.IsTxHash(id) {
		return repository.PayRequest{}, fmt.Errorf("%w: request id %q is not a transaction hash", ErrInvalidReference, input.ID)
	}
	worker := strings.ToLower(strings.TrimSpace(input.WorkerAddress))
	employer := strings.ToLower(strings.TrimSpace(input.EmployerAddress))
	if !search.IsAddress(worker) || !search.IsAddress(employer) {
		return repository.PayRequest{}, fmt.Errorf("%w: worker %q employer %q", ErrInvalidAddress, input.WorkerAddress, input.EmployerAddress)
	}
	amount, err := search.ParseUnits(input.Amount)
	if err != nil {
		return repository.PayRequest{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	_, err = l.repo.GetPayRequest(ctx, id)
	switch {
	case err == nil:
		return repository.PayRequest{}, fmt.Errorf("%w: %s", ErrPayRequestExists, id)
	case !errors.Is(err, repository.ErrPayRequestNotFound):
		return repository.PayRequest{}, err
	}

	request := repository.PayRequest{
		ID:              id,
		WorkerAddress:   worker,
		EmployerAddress: employer,
		Amount:          amount.Dec(),
		Description:     input.Description,
		DueDate:         input.DueDate,
		Status:          RequestPending,
		PayrollRunID:    input.PayrollRunID,
		TxHash:          id,
		CreatedAt:       TimeNow().UnixMilli(),
		ExpiresAt:       input.ExpiresAt,
	}
	if err := l.repo.CreatePayRequest(ctx, &request); err != nil {
		return repository.PayRequest{}, err
	}

	l.logs.Infow("pay request created", "id", id, "worker", worker, "employer", employer)
	return request, nil
}

func (l *Ledger) GetPayRequest(ctx context.Context, id string) (repository.PayRequest, error) {
	request, err := l.repo.GetPayRequest(ctx, id)
	return request, notFound(err)
}

func (l *Ledger) ListPayRequests(ctx context.Context, filter repository.PayRequestFilter) ([]repository.PayRequest, error) {
	return l.repo.ListPayRequests(ctx, filter)
}

// UpdatePayRequestStatus moves a request along its lifecycle. Moves out of a terminal
// state, or skipping to a state not reachable from the current one, are rejected.
func (l *Ledger) UpdatePayRequestStatus(ctx context.Context, id, status, txHash string) (repository.PayRequest, error) {
	request, err := l.repo.GetPayRequest(ctx, id)
	if err != nil {
		return repository.PayRequest{}, notFound(err)
	}

	if !slices.Contains(requestTransitions[request.Status], status) {
		return repository.PayRequest{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, request.Status, status)
	}

	request.Status = status
	if txHash != "" {
		request.TxHash = strings.ToLower(txHash)
	}
	if err := l.repo.UpdatePayRequest(ctx, &request); err != nil {
		return repository.PayRequest{}, err
	}

	l.logs.Infow("pay request status changed", "id", request.ID, "status", status)
	return request, nil
}

func notFound(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrWorkerNotFound),
		errors.Is(err, repository.ErrPayrollNotFound),
		errors.Is(err, repository.ErrPayRequestNotFound),
		errors.Is(err, repository.ErrSettingNotFound),
		errors.Is(err, repository.ErrTransferNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}
