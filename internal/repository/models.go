package repository

// SchemaVersion is the generation written to schema_meta and to every snapshot.
const SchemaVersion = 1

type CachedTransfer struct {
	ID              uint   `gorm:"primaryKey" json:"id,omitempty"`
	TransactionHash string `gorm:"size:66;uniqueIndex;not null" json:"transactionHash"` // 0x + 64 hex chars
	BlockNumber     uint64 `gorm:"not null;index" json:"blockNumber"`
	Timestamp       int64  `gorm:"column:block_time;not null;index" json:"timestamp"` // unix seconds
	From            string `gorm:"column:from_address;size:42;not null;index" json:"from"`
	To              string `gorm:"column:to_address;size:42;not null;index" json:"to"`
	Value           string `gorm:"size:100;not null" json:"value"` // smallest token unit
	TokenSymbol     string `gorm:"size:32" json:"tokenSymbol"`
	TokenDecimals   uint8  `json:"tokenDecimals"`
	GasUsed         string `gorm:"size:100" json:"gasUsed"`
	GasPrice        string `gorm:"size:100" json:"gasPrice"`
	CachedAt        int64  `json:"cachedAt"` // unix millis
}

type Annotation struct {
	ID            uint              `gorm:"primaryKey" json:"id,omitempty"`
	ReferenceType string            `gorm:"size:32;not null;uniqueIndex:idx_annotation_ref" json:"referenceType"`
	ReferenceID   string            `gorm:"size:128;not null;uniqueIndex:idx_annotation_ref" json:"referenceId"`
	MemoText      string            `gorm:"type:text" json:"memoText"`
	Tags          []string          `gorm:"serializer:json" json:"tags"`
	Metadata      map[string]string `gorm:"serializer:json" json:"metadata,omitempty"`
	MetadataCID   string            `gorm:"column:metadata_cid" json:"metadataCid,omitempty"`
	CreatedAt     int64             `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt     int64             `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

type Worker struct {
	ID        uint   `gorm:"primaryKey" json:"id,omitempty"`
	Address   string `gorm:"size:42;not null;index" json:"address"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Notes     string `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt int64  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt int64  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

type PayrollPayment struct {
	Worker     string `json:"worker"`
	WorkerName string `json:"workerName,omitempty"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
	TxHash     string `json:"txHash,omitempty"`
}

type PayrollRun struct {
	ID          uint             `gorm:"primaryKey" json:"id,omitempty"`
	RunID       string           `gorm:"size:128;not null;uniqueIndex" json:"runId"`
	Employer    string           `gorm:"size:42;not null;index" json:"employer"`
	Payments    []PayrollPayment `gorm:"serializer:json" json:"payments"`
	PayPeriod   string           `json:"payPeriod"`
	TotalAmount string           `gorm:"size:100" json:"totalAmount"`
	Status      string           `gorm:"size:16;not null;index" json:"status"`
	CreatedAt   int64            `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   int64            `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// PayRequest is keyed by the transaction hash that created it on chain.
type PayRequest struct {
	ID              string `gorm:"primaryKey;size:128" json:"id"`
	WorkerAddress   string `gorm:"size:42;not null;index" json:"workerAddress"`
	EmployerAddress string `gorm:"size:42;not null;index" json:"employerAddress"`
	Amount          string `gorm:"size:100" json:"amount"`
	Description     string `gorm:"type:text" json:"description"`
	DueDate         int64  `json:"dueDate,omitempty"`
	Status          string `gorm:"size:16;not null;index" json:"status"`
	PayrollRunID    string `json:"payrollRunId,omitempty"`
	TxHash          string `json:"txHash,omitempty"`
	CreatedAt       int64  `gorm:"autoCreateTime:false" json:"createdAt"`
	ExpiresAt       int64  `json:"expiresAt,omitempty"`
}

type UserSetting struct {
	ID    uint   `gorm:"primaryKey" json:"id,omitempty"`
	Key   string `gorm:"column:setting_key;size:128;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

type SchemaMeta struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

// Snapshot is the portable document produced by Export and consumed by Import.
type Snapshot struct {
	Version      int              `json:"version"`
	ExportedAt   int64            `json:"exportedAt"`
	Transfers    []CachedTransfer `json:"cachedTransfers"`
	Annotations  []Annotation     `json:"annotations"`
	Workers      []Worker         `json:"workers"`
	PayrollRuns  []PayrollRun     `json:"payrollRuns"`
	PayRequests  []PayRequest     `json:"payRequests"`
	UserSettings []UserSetting    `json:"settings"`
}

// ImportStats counts the rows appended per collection and the rows skipped because their
// unique key was already present locally.
type ImportStats struct {
	Transfers             int `json:"transfers"`
	Annotations           int `json:"annotations"`
	Workers               int `json:"workers"`
	PayrollRuns           int `json:"payrollRuns"`
	PayRequests           int `json:"payRequests"`
	UserSettings          int `json:"settings"`
	DuplicateTransfers    int `json:"duplicateTransfers"`
	DuplicateAnnotations  int `json:"duplicateAnnotations"`
	DuplicatePayrollRuns  int `json:"duplicatePayrollRuns"`
	DuplicatePayRequests  int `json:"duplicatePayRequests"`
	DuplicateUserSettings int `json:"duplicateUserSettings"`
}

// Duplicates is the total number of snapshot rows skipped on a unique key.
func (s ImportStats) Duplicates() int {
	return s.DuplicateTransfers + s.DuplicateAnnotations + s.DuplicatePayrollRuns + s.DuplicatePayRequests + s.DuplicateUserSettings
}

type PayrollFilter struct {
	Employer string
	Status   string
}

type PayRequestFilter struct {
	Worker   string
	Employer string
	Status   string
}
