package e2etest

import (
	"encoding/json"
	"fmt"
)

// Envelope is the JSON response shape shared by every API endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData unmarshals the envelope data payload into out.
func (e *Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("envelope has no data (message: %q)", e.Message)
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("unmarshal envelope data: %w", err)
	}
	return nil
}
