package explorer

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Params struct {
	APIKey     string
	Address    string
	StartBlock uint64
	EndBlock   uint64
	Page       int
	Offset     int
}

func (p Params) withDefaults() Params {
	if p.EndBlock == 0 {
		p.EndBlock = DefaultEndBlock
	}
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Offset <= 0 {
		p.Offset = DefaultOffset
	}
	return p
}

type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Transfer is one tokentx row. The explorer sends every field as a decimal string.
type Transfer struct {
	BlockNumber   string `json:"blockNumber"`
	TimeStamp     string `json:"timeStamp"`
	Hash          string `json:"hash"`
	From          string `json:"from"`
	To            string `json:"to"`
	Value         string `json:"value"`
	TokenName     string `json:"tokenName"`
	TokenSymbol   string `json:"tokenSymbol"`
	TokenDecimal  string `json:"tokenDecimal"`
	Gas           string `json:"gas"`
	GasPrice      string `json:"gasPrice"`
	GasUsed       string `json:"gasUsed"`
	Confirmations string `json:"confirmations"`
}

func (t Transfer) Block() (uint64, error) {
	block, err := strconv.ParseUint(t.BlockNumber, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse block number %q: %w", t.BlockNumber, err)
	}
	return block, nil
}

func (t Transfer) Timestamp() (int64, error) {
	ts, err := strconv.ParseInt(t.TimeStamp, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: %w", t.TimeStamp, err)
	}
	return ts, nil
}

func (t Transfer) Decimals() (uint8, error) {
	decimals, err := strconv.ParseUint(t.TokenDecimal, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parse token decimals %q: %w", t.TokenDecimal, err)
	}
	return uint8(decimals), nil
}
