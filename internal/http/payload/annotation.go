package payload

import (
	"flowledger/internal/core"

	"github.com/jellydator/validation"
)

type AnnotationRequest struct {
	Kind        string            `json:"kind"`
	ID          string            `json:"id"`
	MemoText    string            `json:"memoText"`
	Tags        []string          `json:"tags"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	MetadataCID string            `json:"metadataCid,omitempty"`
}

func (a AnnotationRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Kind, validation.Required, referenceKindRule),
		validation.Field(&a.ID, validation.Required, validation.Length(1, 128)),
		validation.Field(&a.Tags, validation.Each(validation.Length(0, 64))),
	)
}

func (a AnnotationRequest) ToCore() core.AnnotationInput {
	return core.AnnotationInput{
		Reference:   core.Reference{Kind: core.ReferenceKind(a.Kind), ID: a.ID},
		MemoText:    a.MemoText,
		Tags:        a.Tags,
		Metadata:    a.Metadata,
		MetadataCID: a.MetadataCID,
	}
}

type PayslipRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func (p PayslipRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Kind, validation.Required, referenceKindRule),
		validation.Field(&p.ID, validation.Required, validation.Length(1, 128)),
	)
}

func (p PayslipRequest) ToCore() core.Reference {
	return core.Reference{Kind: core.ReferenceKind(p.Kind), ID: p.ID}
}
