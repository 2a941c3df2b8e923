package ethereum

// TransferLog is a decoded ERC-20 Transfer event.
type TransferLog struct {
	TxHash      string
	LogIndex    uint
	BlockNumber uint64
	From        string
	To          string
	Value       string
}
