package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// maxBodyBytes bounds every JSON body, snapshot imports included.
const maxBodyBytes = 32 << 20

type DecodeValidator struct{}

// DecodeAndValidateJSONPayload decodes the request body into object, rejecting unknown
// fields, and runs object's validation rules when it has any.
func (dv DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	defer r.Body.Close()
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// ReadBody returns the raw request body, bounded like decoded payloads.
func (dv DecodeValidator) ReadBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()

	var raw json.RawMessage
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("reading json body: %w", err)
	}
	return raw, nil
}
