package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errEnvVarInvalid  error = errors.New("environment variable is invalid")
)

const (
	apiPortEnvKey       = "API_PORT"
	ethNodeEnvKey       = "ETH_NODE_URL"
	payslipSecretEnvKey = "PAYSLIP_SECRET"
	dbDSNEnvKey         = "DB_DSN"
	explorerURLEnvKey   = "EXPLORER_API_URL"
	tokenContractEnvKey = "TOKEN_CONTRACT"
	tokenSymbolEnvKey   = "TOKEN_SYMBOL"
	tokenDecimalsEnvKey = "TOKEN_DECIMALS"
	blockTimeEnvKey     = "BLOCK_TIME_SECONDS"
	logLevelEnvKey      = "LOG_LEVEL"
	txLinkEnvKey        = "EXPLORER_TX_URL"
)

const (
	defaultDSN           = "flowledger.db"
	defaultExplorerURL   = "https://api.polygonscan.com/api"
	defaultTokenContract = "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"
	defaultTokenSymbol   = "USDC"
	defaultTokenDecimals = 6
	defaultBlockTime     = 2
	defaultLogLevel      = "info"
	defaultTxLink        = "https://polygonscan.com/tx/"
)

type Token struct {
	Contract string
	Symbol   string
	Decimals uint8
}

type App struct {
	Port             string
	NodeURL          string
	PayslipSecret    string
	DBConnectionDSN  string
	ExplorerURL      string
	TxLinkBase       string
	Token            Token
	BlockTimeSeconds uint64
	LogLevel         string
}

// NewApp reads the application configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func NewApp() (App, error) {
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	payslipSecret, ok := os.LookupEnv(payslipSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, payslipSecretEnvKey)
	}

	decimals, err := uintOrDefault(tokenDecimalsEnvKey, defaultTokenDecimals, 8)
	if err != nil {
		return App{}, err
	}

	blockTime, err := uintOrDefault(blockTimeEnvKey, defaultBlockTime, 64)
	if err != nil {
		return App{}, err
	}
	if blockTime == 0 {
		return App{}, fmt.Errorf("%w: %s must be positive", errEnvVarInvalid, blockTimeEnvKey)
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		PayslipSecret:   payslipSecret,
		DBConnectionDSN: stringOrDefault(dbDSNEnvKey, defaultDSN),
		ExplorerURL:     stringOrDefault(explorerURLEnvKey, defaultExplorerURL),
		TxLinkBase:      stringOrDefault(txLinkEnvKey, defaultTxLink),
		Token: Token{
			Contract: stringOrDefault(tokenContractEnvKey, defaultTokenContract),
			Symbol:   stringOrDefault(tokenSymbolEnvKey, defaultTokenSymbol),
			Decimals: uint8(decimals),
		},
		BlockTimeSeconds: blockTime,
		LogLevel:         stringOrDefault(logLevelEnvKey, defaultLogLevel),
	}, nil
}

func stringOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func uintOrDefault(key string, fallback uint64, bitSize int) (uint64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	n, err := strconv.ParseUint(v, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return n, nil
}
