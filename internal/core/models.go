package core

import (
	"flowledger/internal/repository"
	"flowledger/internal/search"
	"fmt"
	"strings"
	"time"
)

type ReferenceKind string

const (
	ReferenceTxHash         ReferenceKind = "TX_HASH"
	ReferencePayrollPayment ReferenceKind = "PAYROLL_PAYMENT"
	ReferenceRequest        ReferenceKind = "REQUEST"
)

// Reference identifies the record an annotation is attached to.
type Reference struct {
	Kind ReferenceKind `json:"kind"`
	ID   string        `json:"id"`
}

// NewReference validates kind and normalizes id to lowercase.
func NewReference(kind, id string) (Reference, error) {
	k := ReferenceKind(strings.ToUpper(strings.TrimSpace(kind)))
	id = strings.ToLower(strings.TrimSpace(id))

	switch k {
	case ReferenceTxHash:
		if !search.IsTxHash(id) {
			return Reference{}, fmt.Errorf("%w: %q is not a transaction hash", ErrInvalidReference, id)
		}
	case ReferencePayrollPayment, ReferenceRequest:
		if id == "" {
			return Reference{}, fmt.Errorf("%w: empty id", ErrInvalidReference)
		}
	default:
		return Reference{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidReference, kind)
	}

	return Reference{Kind: k, ID: id}, nil
}

type AnnotationInput struct {
	Reference   Reference
	MemoText    string
	Tags        []string
	Metadata    map[string]string
	MetadataCID string
}

type ExplorerSyncRequest struct {
	Address    string
	StartBlock *uint64
	EndBlock   uint64
	Page       int
	Offset     int
}

// Token describes the ERC-20 the ledger tracks.
type Token struct {
	Contract string
	Symbol   string
	Decimals uint8
}

type LedgerConfig struct {
	Token            Token
	BlockTimeSeconds uint64
	PayslipTTL       time.Duration
	TxLinkBase       string // prefix of a transaction's explorer page
}

// TransferView is a cached transfer with its display amount and annotation, if any.
type TransferView struct {
	repository.CachedTransfer
	Amount     string                 `json:"amount"`
	Annotation *repository.Annotation `json:"annotation,omitempty"`
}

type SearchResult struct {
	Filters     search.Filters          `json:"filters"`
	FreeText    string                  `json:"freeText"`
	Transfers   []TransferView          `json:"transfers"`
	Annotations []repository.Annotation `json:"annotations"`
}

type Summary struct {
	Address       string `json:"address"`
	TransferCount int    `json:"transferCount"`
	ReceivedCount int    `json:"receivedCount"`
	SentCount     int    `json:"sentCount"`
	TotalReceived string `json:"totalReceived"`
	TotalSent     string `json:"totalSent"`
}

type WorkerInput struct {
	Address string
	Name    string
	Email   string
	Notes   string
}

type PaymentInput struct {
	Worker     string
	WorkerName string
	Amount     string
	TxHash     string
}

type PayrollInput struct {
	RunID     string
	Employer  string
	PayPeriod string
	Status    string
	Payments  []PaymentInput
}

type PayRequestInput struct {
	ID              string
	WorkerAddress   string
	EmployerAddress string
	Amount          string
	Description     string
	DueDate         int64
	ExpiresAt       int64
	PayrollRunID    string
}

type Payslip struct {
	Reference  Reference                  `json:"reference"`
	Transfer   *repository.CachedTransfer `json:"transfer,omitempty"`
	Amount     string                     `json:"amount,omitempty"`
	Annotation *repository.Annotation     `json:"annotation,omitempty"`
	ExpiresAt  int64                      `json:"expiresAt"`
}

const (
	PayrollDraft     = "draft"
	PayrollPending   = "pending"
	PayrollCompleted = "completed"
	PayrollCancelled = "cancelled"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentClaimed  = "claimed"
	PaymentDisputed = "disputed"

	RequestPending   = "pending"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
	RequestPaid      = "paid"
	RequestCancelled = "cancelled"
	RequestExpired   = "expired"
	RequestClaimable = "claimable"
	RequestClaimed   = "claimed"
	RequestDisputed  = "disputed"
)

var payrollStatuses = map[string]struct{}{
	PayrollDraft: {}, PayrollPending: {}, PayrollCompleted: {}, PayrollCancelled: {},
}

var paymentStatuses = map[string]struct{}{
	PaymentPending: {}, PaymentPaid: {}, PaymentClaimed: {}, PaymentDisputed: {},
}

// requestTransitions lists the states a pay request may move to from each open state.
// States without an entry are terminal.
var requestTransitions = map[string][]string{
	RequestPending:   {RequestApproved, RequestClaimable, RequestRejected, RequestCancelled, RequestExpired, RequestDisputed},
	RequestApproved:  {RequestClaimable, RequestClaimed, RequestPaid, RequestRejected, RequestCancelled, RequestExpired, RequestDisputed},
	RequestClaimable: {RequestClaimed, RequestPaid, RequestRejected, RequestCancelled, RequestExpired, RequestDisputed},
}
