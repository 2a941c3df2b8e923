package core

import (
	"context"
	"flowledger/internal/ethereum"
	"flowledger/internal/explorer"
	"flowledger/internal/repository"
	tokenIssuer "flowledger/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type Repository interface {
	InsertTransfer(ctx context.Context, transfer repository.CachedTransfer) (bool, error)
	TransferExists(ctx context.Context, txHash string) (bool, error)
	GetTransferByHash(ctx context.Context, txHash string) (repository.CachedTransfer, error)
	LatestBlockFor(ctx context.Context, address string) (uint64, bool, error)
	SearchTransfers(ctx context.Context, q repository.TransferQuery) ([]repository.CachedTransfer, error)

	GetAnnotation(ctx context.Context, referenceType, referenceID string) (repository.Annotation, error)
	UpsertAnnotation(ctx context.Context, annotation repository.Annotation) (repository.Annotation, error)
	ListAnnotations(ctx context.Context, referenceType, referenceID string) ([]repository.Annotation, error)

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	CreateWorker(ctx context.Context, worker *repository.Worker) error
	UpdateWorker(ctx context.Context, worker *repository.Worker) error
	DeleteWorker(ctx context.Context, id uint) error
	GetWorker(ctx context.Context, id uint) (repository.Worker, error)
	GetWorkerByAddress(ctx context.Context, address string) (repository.Worker, error)
	ListWorkers(ctx context.Context) ([]repository.Worker, error)

	CreatePayrollRun(ctx context.Context, run *repository.PayrollRun) error
	GetPayrollRun(ctx context.Context, runID string) (repository.PayrollRun, error)
	ListPayrollRuns(ctx context.Context, filter repository.PayrollFilter) ([]repository.PayrollRun, error)
	UpdatePayrollRun(ctx context.Context, run *repository.PayrollRun) error

	CreatePayRequest(ctx context.Context, request *repository.PayRequest) error
	GetPayRequest(ctx context.Context, id string) (repository.PayRequest, error)
	ListPayRequests(ctx context.Context, filter repository.PayRequestFilter) ([]repository.PayRequest, error)
	UpdatePayRequest(ctx context.Context, request *repository.PayRequest) error

	Export(ctx context.Context) (repository.Snapshot, error)
	Import(ctx context.Context, snapshot repository.Snapshot) (repository.ImportStats, error)
	Clear(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name Explorer . Explorer
type Explorer interface {
	FetchTokenTransfers(ctx context.Context, params explorer.Params) ([]explorer.Transfer, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	LatestBlock(ctx context.Context) (uint64, error)
	FetchTransferLogs(ctx context.Context, address string, fromBlock, toBlock uint64) ([]ethereum.TransferLog, error)
	BlockTimestamps(ctx context.Context, blocks []uint64) (map[uint64]int64, error)
}

type PayslipIssuer interface {
	Issue(grant tokenIssuer.Grant) (string, error)
	Parse(token string) (tokenIssuer.ShareClaims, error)
}
