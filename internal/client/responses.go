package client

import (
	"encoding/json"
	"fmt"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
)

// successEnvelope is the acknowledgement body mutating endpoints return when
// the operation itself can fail despite a 200 status.
type successEnvelope struct {
	Success bool            `json:"success"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}

// checkSuccess decodes an acknowledgement body and surfaces an operation-level
// failure hidden behind a 200.
func checkSuccess(resp *http.Response, action string) error {
	var envelope successEnvelope

	err := resp.JSON(&envelope)
	if err != nil {
		return fmt.Errorf("parsing %s response: %w", action, err)
	}

	if !envelope.Success {
		if len(envelope.Errors) > 0 {
			return fmt.Errorf("%s: %w: %s", action, ErrOperationFailed, envelope.Errors)
		}

		return fmt.Errorf("%s: %w", action, ErrOperationFailed)
	}

	return nil
}
