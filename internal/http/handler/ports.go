package handler

import (
	"context"
	"flowledger/internal/core"
	"flowledger/internal/repository"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
	ReadBody(r *http.Request) ([]byte, error)
}

//counterfeiter:generate -o fake -fake-name SyncService . SyncService
type SyncService interface {
	SyncExplorer(ctx context.Context, req core.ExplorerSyncRequest) (int, error)
	SyncChain(ctx context.Context, address string, days int) (int, error)
}

//counterfeiter:generate -o fake -fake-name SearchService . SearchService
type SearchService interface {
	Search(ctx context.Context, user, query string, limit int) (core.SearchResult, error)
	Summary(ctx context.Context, address string) (core.Summary, error)
	ExportCSV(ctx context.Context, user, query string) ([]byte, error)
}

//counterfeiter:generate -o fake -fake-name AnnotationService . AnnotationService
type AnnotationService interface {
	GetAnnotation(ctx context.Context, ref core.Reference) (repository.Annotation, bool, error)
	SaveAnnotation(ctx context.Context, input core.AnnotationInput) (repository.Annotation, error)
}

//counterfeiter:generate -o fake -fake-name SnapshotService . SnapshotService
type SnapshotService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (repository.ImportStats, error)
	Clear(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name PayslipService . PayslipService
type PayslipService interface {
	IssuePayslip(ctx context.Context, ref core.Reference) (string, error)
	ResolvePayslip(ctx context.Context, token string) (core.Payslip, error)
}

type DirectoryService interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	CreateWorker(ctx context.Context, input core.WorkerInput) (repository.Worker, error)
	UpdateWorker(ctx context.Context, id uint, input core.WorkerInput) (repository.Worker, error)
	DeleteWorker(ctx context.Context, id uint) error
	ListWorkers(ctx context.Context) ([]repository.Worker, error)

	CreatePayrollRun(ctx context.Context, input core.PayrollInput) (repository.PayrollRun, error)
	GetPayrollRun(ctx context.Context, runID string) (repository.PayrollRun, error)
	ListPayrollRuns(ctx context.Context, filter repository.PayrollFilter) ([]repository.PayrollRun, error)
	UpdatePaymentStatus(ctx context.Context, runID, worker, status, txHash string) (repository.PayrollRun, error)
	UpdatePayrollStatus(ctx context.Context, runID, status string) (repository.PayrollRun, error)

	CreatePayRequest(ctx context.Context, input core.PayRequestInput) (repository.PayRequest, error)
	GetPayRequest(ctx context.Context, id string) (repository.PayRequest, error)
	ListPayRequests(ctx context.Context, filter repository.PayRequestFilter) ([]repository.PayRequest, error)
	UpdatePayRequestStatus(ctx context.Context, id, status, txHash string) (repository.PayRequest, error)
}
