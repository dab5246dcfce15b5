// Package execution writes per-invocation execution records to Firestore
// so every function call leaves an auditable trail.
package execution

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Database is the subset of the shared persistence interface the logger
// needs.
type Database interface {
	SetExecution(ctx context.Context, id string, data map[string]interface{}) error
	UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error
}

// Execution statuses.
const (
	StatusStarted = "started"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// ExecutionOptions contains optional fields for execution logging
type ExecutionOptions struct {
	UserID      string
	TriggerType string
	Inputs      interface{}
}

// LogStart creates an execution record with started status and returns its
// ID.
func LogStart(ctx context.Context, db Database, service string, opts ExecutionOptions) (string, error) {
	execID := fmt.Sprintf("%s-%d", service, time.Now().UnixNano())

	data := map[string]interface{}{
		"execution_id": execID,
		"service":      service,
		"status":       StatusStarted,
		"start_time":   time.Now().UTC(),
	}
	if opts.UserID != "" {
		data["user_id"] = opts.UserID
	}
	if opts.TriggerType != "" {
		data["trigger_type"] = opts.TriggerType
	}
	if opts.Inputs != nil {
		if inputsJSON, err := json.Marshal(opts.Inputs); err == nil {
			data["inputs_json"] = string(inputsJSON)
		}
	}

	if err := db.SetExecution(ctx, execID, data); err != nil {
		return execID, fmt.Errorf("failed to log execution start: %w", err)
	}
	return execID, nil
}

// LogSuccess marks an execution record successful and attaches its
// outputs.
func LogSuccess(ctx context.Context, db Database, execID string, outputs interface{}) error {
	data := map[string]interface{}{
		"status":   StatusSuccess,
		"end_time": time.Now().UTC(),
	}
	if outputs != nil {
		if outputsJSON, err := json.Marshal(outputs); err == nil {
			data["outputs"] = string(outputsJSON)
		}
	}
	if err := db.UpdateExecution(ctx, execID, data); err != nil {
		return fmt.Errorf("failed to log execution success: %w", err)
	}
	return nil
}

// LogFailure marks an execution record failed with the error message.
func LogFailure(ctx context.Context, db Database, execID string, cause error) error {
	data := map[string]interface{}{
		"status":   StatusFailure,
		"end_time": time.Now().UTC(),
	}
	if cause != nil {
		data["error"] = cause.Error()
	}
	if err := db.UpdateExecution(ctx, execID, data); err != nil {
		return fmt.Errorf("failed to log execution failure: %w", err)
	}
	return nil
}
