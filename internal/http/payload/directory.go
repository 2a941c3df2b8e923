package payload

import (
	"flowledger/internal/core"

	"github.com/jellydator/validation"
)

type SettingRequest struct {
	Value string `json:"value"`
}

type WorkerRequest struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (w WorkerRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Address, validation.Required, addressRule),
		validation.Field(&w.Name, validation.Required, validation.Length(1, 128)),
	)
}

func (w WorkerRequest) ToCore() core.WorkerInput {
	return core.WorkerInput{
		Address: w.Address,
		Name:    w.Name,
		Email:   w.Email,
		Notes:   w.Notes,
	}
}

// WorkerUpdateRequest changes contact details only.
type WorkerUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

func (w WorkerUpdateRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Name, validation.Required, validation.Length(1, 128)),
	)
}

func (w WorkerUpdateRequest) ToCore() core.WorkerInput {
	return core.WorkerInput{Name: w.Name, Email: w.Email, Notes: w.Notes}
}

type Payment struct {
	Worker     string `json:"worker"`
	WorkerName string `json:"workerName,omitempty"`
	Amount     string `json:"amount"`
	TxHash     string `json:"txHash,omitempty"`
}

func (p Payment) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Worker, validation.Required, addressRule),
		validation.Field(&p.Amount, validation.Required, unitsRule),
		validation.Field(&p.TxHash, txHashRule),
	)
}

type PayrollRequest struct {
	RunID     string    `json:"runId,omitempty"`
	Employer  string    `json:"employer"`
	PayPeriod string    `json:"payPeriod"`
	Status    string    `json:"status,omitempty"`
	Payments  []Payment `json:"payments"`
}

func (p PayrollRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Employer, validation.Required, addressRule),
		validation.Field(&p.Payments, validation.Required),
		validation.Field(&p.Status, validation.In(core.PayrollDraft, core.PayrollPending, core.PayrollCompleted, core.PayrollCancelled)),
	)
}

func (p PayrollRequest) ToCore() core.PayrollInput {
	payments := make([]core.PaymentInput, 0, len(p.Payments))
	for _, pm := range p.Payments {
		payments = append(payments, core.PaymentInput{
			Worker:     pm.Worker,
			WorkerName: pm.WorkerName,
			Amount:     pm.Amount,
			TxHash:     pm.TxHash,
		})
	}
	return core.PayrollInput{
		RunID:     p.RunID,
		Employer:  p.Employer,
		PayPeriod: p.PayPeriod,
		Status:    p.Status,
		Payments:  payments,
	}
}

type PaymentStatusRequest struct {
	Worker string `json:"worker"`
	Status string `json:"status"`
	TxHash string `json:"txHash,omitempty"`
}

func (p PaymentStatusRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Worker, validation.Required, addressRule),
		validation.Field(&p.Status, validation.Required, validation.In(core.PaymentPending, core.PaymentPaid, core.PaymentClaimed, core.PaymentDisputed)),
		validation.Field(&p.TxHash, txHashRule),
	)
}

type StatusRequest struct {
	Status string `json:"status"`
	TxHash string `json:"txHash,omitempty"`
}

func (s StatusRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Status, validation.Required),
		validation.Field(&s.TxHash, txHashRule),
	)
}

type PayRequestBody struct {
	ID              string `json:"id"`
	WorkerAddress   string `json:"workerAddress"`
	EmployerAddress string `json:"employerAddress"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	DueDate         int64  `json:"dueDate,omitempty"`
	ExpiresAt       int64  `json:"expiresAt,omitempty"`
	PayrollRunID    string `json:"payrollRunId,omitempty"`
}

func (p PayRequestBody) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, txHashRule),
		validation.Field(&p.WorkerAddress, validation.Required, addressRule),
		validation.Field(&p.EmployerAddress, validation.Required, addressRule),
		validation.Field(&p.Amount, validation.Required, unitsRule),
	)
}

func (p PayRequestBody) ToCore() core.PayRequestInput {
	return core.PayRequestInput{
		ID:              p.ID,
		WorkerAddress:   p.WorkerAddress,
		EmployerAddress: p.EmployerAddress,
		Amount:          p.Amount,
		Description:     p.Description,
		DueDate:         p.DueDate,
		ExpiresAt:       p.ExpiresAt,
		PayrollRunID:    p.PayrollRunID,
	}
}
