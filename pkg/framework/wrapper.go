// Package framework wraps function handlers with execution logging,
// scoped logging and uniform JSON responses.
package framework

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/formsight/formsight-server/pkg/bootstrap"
	"github.com/formsight/formsight-server/pkg/execution"
)

// HTTPHandlerFunc is the signature for an HTTP function handler.
// It returns the response body, the HTTP status code, and an error. On
// error the status code is used for the error response (0 means 500).
type HTTPHandlerFunc func(ctx context.Context, r *http.Request, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, int, error)

// CloudEventHandlerFunc is the signature for a CloudEvent handler.
// It returns outputs (for execution logging) and an error.
type CloudEventHandlerFunc func(ctx context.Context, e event.Event, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, error)

// WrapHTTP wraps an HTTP handler with automatic execution logging and
// JSON serialization of both success and error responses.
func WrapHTTP(serviceName string, svc *bootstrap.Service, handler HTTPHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := slog.With("service", serviceName)

		execID, err := execution.LogStart(ctx, svc.DB, serviceName, execution.ExecutionOptions{
			TriggerType: "http",
		})
		if err != nil {
			logger.Error("Failed to log execution start", "error", err)
			// Continue anyway - don't fail the request just because logging failed
		}

		logger = logger.With("execution_id", execID)
		logger.Info("Function started", "method", r.Method, "path", r.URL.Path)

		body, status, handlerErr := handler(ctx, r, svc, logger, execID)

		if handlerErr != nil {
			if status == 0 {
				status = http.StatusInternalServerError
			}
			logger.Error("Function failed", "status", status, "error", handlerErr)
			if logErr := execution.LogFailure(ctx, svc.DB, execID, handlerErr); logErr != nil {
				logger.Warn("Failed to log execution failure", "error", logErr)
			}
			writeJSON(w, status, map[string]string{"error": handlerErr.Error()})
			return
		}

		if status == 0 {
			status = http.StatusOK
		}
		logger.Info("Function completed successfully", "status", status)
		if logErr := execution.LogSuccess(ctx, svc.DB, execID, body); logErr != nil {
			logger.Warn("Failed to log execution success", "error", logErr)
		}
		writeJSON(w, status, body)
	}
}

// WrapCloudEvent wraps a CloudEvent handler with automatic execution
// logging.
func WrapCloudEvent(serviceName string, svc *bootstrap.Service, handler CloudEventHandlerFunc) func(context.Context, event.Event) error {
	return func(ctx context.Context, e event.Event) error {
		logger := slog.With("service", serviceName)

		execID, err := execution.LogStart(ctx, svc.DB, serviceName, execution.ExecutionOptions{
			TriggerType: "pubsub",
		})
		if err != nil {
			logger.Error("Failed to log execution start", "error", err)
		}

		logger = logger.With("execution_id", execID)
		logger.Info("Function started")

		outputs, handlerErr := handler(ctx, e, svc, logger, execID)

		if handlerErr != nil {
			logger.Error("Function failed", "error", handlerErr)
			if logErr := execution.LogFailure(ctx, svc.DB, execID, handlerErr); logErr != nil {
				logger.Warn("Failed to log execution failure", "error", logErr)
			}
			return handlerErr
		}

		logger.Info("Function completed successfully")
		if logErr := execution.LogSuccess(ctx, svc.DB, execID, outputs); logErr != nil {
			logger.Warn("Failed to log execution success", "error", logErr)
		}
		return nil
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
