package payload

import (
	"flowledger/internal/core"

	"github.com/jellydator/validation"
)

type ExplorerSyncRequest struct {
	Address    string  `json:"address"`
	StartBlock *uint64 `json:"startBlock,omitempty"`
	EndBlock   uint64  `json:"endBlock,omitempty"`
	Page       int     `json:"page,omitempty"`
	Offset     int     `json:"offset,omitempty"`
}

func (e ExplorerSyncRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Address, validation.Required, addressRule),
		validation.Field(&e.Page, validation.Min(0)),
		validation.Field(&e.Offset, validation.Min(0), validation.Max(10000)),
	)
}

func (e ExplorerSyncRequest) ToCore() core.ExplorerSyncRequest {
	return core.ExplorerSyncRequest{
		Address:    e.Address,
		StartBlock: e.StartBlock,
		EndBlock:   e.EndBlock,
		Page:       e.Page,
		Offset:     e.Offset,
	}
}

type ChainSyncRequest struct {
	Address string `json:"address"`
	Days    int    `json:"days,omitempty"`
}

func (c ChainSyncRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required, addressRule),
		validation.Field(&c.Days, validation.Min(0), validation.Max(3650)),
	)
}
