package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"flowledger/internal/metrics"
)

const (
	DefaultEndBlock = 99999999
	DefaultPage     = 1
	DefaultOffset   = 100

	noTransactionsMessage = "No transactions found"
)

var (
	ErrMissingAPIKey = errors.New("explorer API key not configured, add it in settings")
	ErrUnreachable   = errors.New("explorer unreachable")
)

// UpstreamError carries the explorer's own failure message.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

type Gate interface {
	Wait(ctx context.Context) error
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	contract   string
	gate       Gate
}

func NewClient(httpClient *http.Client, baseURL, contract string, gate Gate) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		contract:   contract,
		gate:       gate,
	}
}

// FetchTokenTransfers lists token transfers touching params.Address, newest first. Every
// call passes through the shared gate before reaching the network.
func (c *Client) FetchTokenTransfers(ctx context.Context, params Params) ([]Transfer, error) {
	if params.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	params = params.withDefaults()

	if err := c.gate.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate gate: %w", err)
	}

	transfers, err := c.fetch(ctx, params)
	if err != nil {
		metrics.ExplorerCalls.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.ExplorerCalls.WithLabelValues("ok").Inc()
	return transfers, nil
}

func (c *Client) fetch(ctx context.Context, params Params) ([]Transfer, error) {
	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "tokentx")
	query.Set("contractaddress", c.contract)
	query.Set("address", params.Address)
	query.Set("startblock", strconv.FormatUint(params.StartBlock, 10))
	query.Set("endblock", strconv.FormatUint(params.EndBlock, 10))
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("offset", strconv.Itoa(params.Offset))
	query.Set("sort", "desc")
	query.Set("apikey", params.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w: %w", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Message: fmt.Sprintf("explorer responded %s", resp.Status)}
	}

	var envelope response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if envelope.Status != "1" {
		if envelope.Message == noTransactionsMessage {
			return []Transfer{}, nil
		}
		if envelope.Message == "" {
			return nil, &UpstreamError{Message: "Unknown error"}
		}
		return nil, &UpstreamError{Message: envelope.Message}
	}

	var message string
	if err := json.Unmarshal(envelope.Result, &message); err == nil {
		return nil, &UpstreamError{Message: message}
	}

	transfers := []Transfer{}
	if err := json.Unmarshal(envelope.Result, &transfers); err != nil {
		return nil, fmt.Errorf("unmarshal transfers: %w", err)
	}

	return transfers, nil
}
