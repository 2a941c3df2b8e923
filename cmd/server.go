package cmd

import (
	"context"
	"errors"
	"flowledger/internal/config"
	"flowledger/internal/core"
	"flowledger/internal/db"
	"flowledger/internal/ethereum"
	"flowledger/internal/explorer"
	"flowledger/internal/http/handler"
	"flowledger/internal/http/handler/middleware"
	"flowledger/internal/http/payload"
	"flowledger/internal/http/server"
	"flowledger/internal/ratelimit"
	"flowledger/internal/repository"
	"flowledger/pkg/jwt"
	"flowledger/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

const explorerTimeout = 30 * time.Second

func Start() error {
	logger := log.NewZapLogger("flowledger", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger("flowledger", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewGormDB(config.DBConnectionDSN)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewLedgerRepository(dbConn)
	if err := repo.Migrate(context.Background()); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	ethService, err := ethereum.NewEthService(client, config.Token.Contract)
	if err != nil {
		logger.Errorw("failed to create chain service", "error", err)
		return err
	}

	// every explorer call in the process goes through this one gate
	gate := ratelimit.NewGate("explorer", ratelimit.ExplorerInterval)
	explorerClient := explorer.NewClient(
		&http.Client{Timeout: explorerTimeout},
		config.ExplorerURL,
		config.Token.Contract,
		gate)

	// payslip share tokens
	shareIssuer := jwt.NewShareIssuer([]byte(config.PayslipSecret))

	ledger := core.NewLedger(
		logger,
		repo,
		explorerClient,
		ethService,
		shareIssuer,
		core.LedgerConfig{
			Token: core.Token{
				Contract: config.Token.Contract,
				Symbol:   config.Token.Symbol,
				Decimals: config.Token.Decimals,
			},
			BlockTimeSeconds: config.BlockTimeSeconds,
			TxLinkBase:       config.TxLinkBase,
		})

	// handlers
	validator := payload.DecodeValidator{}
	syncHlr := handler.NewSyncHandler(logger, validator, ledger)
	searchHlr := handler.NewSearchHandler(logger, ledger)
	annotationHlr := handler.NewAnnotationHandler(logger, validator, ledger)
	snapshotHlr := handler.NewSnapshotHandler(logger, validator, ledger)
	directoryHlr := handler.NewDirectoryHandler(logger, validator, ledger)
	payslipHlr := handler.NewPayslipHandler(logger, validator, ledger)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.SyncExplorer, syncHlr.HandleSyncExplorer)
	mux.HandleFunc(handler.SyncChain, syncHlr.HandleSyncChain)

	mux.HandleFunc(handler.Search, searchHlr.HandleSearch)
	mux.HandleFunc(handler.Summary, searchHlr.HandleSummary)
	mux.HandleFunc(handler.ExportCSV, searchHlr.HandleExportCSV)

	mux.HandleFunc(handler.GetAnnotation, annotationHlr.HandleGetAnnotation)
	mux.HandleFunc(handler.SaveAnnotation, annotationHlr.HandleSaveAnnotation)

	mux.HandleFunc(handler.Export, snapshotHlr.HandleExport)
	mux.HandleFunc(handler.Import, snapshotHlr.HandleImport)
	mux.HandleFunc(handler.Clear, snapshotHlr.HandleClear)

	mux.HandleFunc(handler.GetSetting, directoryHlr.HandleGetSetting)
	mux.HandleFunc(handler.PutSetting, directoryHlr.HandlePutSetting)
	mux.HandleFunc(handler.DeleteSetting, directoryHlr.HandleDeleteSetting)
	mux.HandleFunc(handler.ListWorkers, directoryHlr.HandleListWorkers)
	mux.HandleFunc(handler.CreateWorker, directoryHlr.HandleCreateWorker)
	mux.HandleFunc(handler.UpdateWorker, directoryHlr.HandleUpdateWorker)
	mux.HandleFunc(handler.DeleteWorker, directoryHlr.HandleDeleteWorker)
	mux.HandleFunc(handler.CreatePayroll, directoryHlr.HandleCreatePayroll)
	mux.HandleFunc(handler.ListPayroll, directoryHlr.HandleListPayroll)
	mux.HandleFunc(handler.GetPayroll, directoryHlr.HandleGetPayroll)
	mux.HandleFunc(handler.UpdatePaymentStatus, directoryHlr.HandleUpdatePaymentStatus)
	mux.HandleFunc(handler.UpdatePayrollStatus, directoryHlr.HandleUpdatePayrollStatus)
	mux.HandleFunc(handler.CreatePayRequest, directoryHlr.HandleCreatePayRequest)
	mux.HandleFunc(handler.ListPayRequests, directoryHlr.HandleListPayRequests)
	mux.HandleFunc(handler.GetPayRequest, directoryHlr.HandleGetPayRequest)
	mux.HandleFunc(handler.UpdatePayRequestStatus, directoryHlr.HandleUpdatePayRequestStatus)

	mux.HandleFunc(handler.IssuePayslip, payslipHlr.HandleIssuePayslip)
	mux.HandleFunc(handler.ResolvePayslip, payslipHlr.HandleResolvePayslip)

	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
