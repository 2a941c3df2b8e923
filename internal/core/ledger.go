package core

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

var TimeNow = time.Now

var (
	ErrInvalidAddress          = errors.New("invalid address")
	ErrInvalidReference        = errors.New("invalid reference")
	ErrInvalidSnapshot         = errors.New("invalid snapshot")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidSetting          = errors.New("invalid setting")
	ErrWorkerExists            = errors.New("worker already exists")
	ErrPayRequestExists        = errors.New("pay request already exists")
	ErrPayrollRunExists        = errors.New("payroll run already exists")
	ErrPaymentNotFound         = errors.New("payment not found in payroll run")
	ErrNotFound                = errors.New("not found")
)

const (
	SettingExplorerAPIKey = "polygonscan_api_key"

	DefaultChainDays   = 30
	DefaultSearchLimit = 100
	DefaultPayslipTTL  = 30 * 24 * time.Hour

	sourceExplorer = "explorer"
	sourceChain    = "chain"
)

// Ledger is the local overlay over on-chain token transfers: it caches transfers, links
// annotations to them and keeps the payroll directory.
type Ledger struct {
	logs     *zap.SugaredLogger
	repo     Repository
	explorer Explorer
	chain    ChainService
	payslips PayslipIssuer
	config   LedgerConfig
}

func NewLedger(logger *zap.SugaredLogger, repo Repository, explorer Explorer, chain ChainService, payslips PayslipIssuer, config LedgerConfig) *Ledger {
	if config.BlockTimeSeconds == 0 {
		config.BlockTimeSeconds = 2
	}
	if config.PayslipTTL <= 0 {
		config.PayslipTTL = DefaultPayslipTTL
	}

	return &Ledger{
		logs:     logger,
		repo:     repo,
		explorer: explorer,
		chain:    chain,
		payslips: payslips,
		config:   config,
	}
}
