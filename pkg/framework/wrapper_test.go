package framework

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/formsight/formsight-server/pkg/bootstrap"
	"github.com/formsight/formsight-server/pkg/mocks"
)

func testService(db *mocks.MockDatabase) *bootstrap.Service {
	return &bootstrap.Service{
		DB:     db,
		Config: &bootstrap.Config{ProjectID: "test-project"},
	}
}

func TestWrapHTTP_Success(t *testing.T) {
	statuses := []string{}
	db := &mocks.MockDatabase{
		SetExecutionFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			statuses = append(statuses, data["status"].(string))
			return nil
		},
		UpdateExecutionFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			statuses = append(statuses, data["status"].(string))
			return nil
		},
	}

	handler := WrapHTTP("analyzer", testService(db), func(ctx context.Context, r *http.Request, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, int, error) {
		return map[string]string{"exercise": "squat"}, 0, nil
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/pose/analyze", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if body["exercise"] != "squat" {
		t.Errorf("body = %v, want handler output", body)
	}

	if len(statuses) != 2 || statuses[0] != "started" || statuses[1] != "success" {
		t.Errorf("execution statuses = %v, want [started success]", statuses)
	}
}

func TestWrapHTTP_HandlerError(t *testing.T) {
	var failureLogged bool
	db := &mocks.MockDatabase{
		UpdateExecutionFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			if data["status"] == "failure" {
				failureLogged = true
			}
			return nil
		},
	}

	handler := WrapHTTP("analyzer", testService(db), func(ctx context.Context, r *http.Request, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, int, error) {
		return nil, http.StatusBadRequest, errors.New("missing image")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/pose/analyze", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing image") {
		t.Errorf("body = %q, want the handler error", rec.Body.String())
	}
	if !failureLogged {
		t.Error("expected a failure execution record")
	}
}

func TestWrapHTTP_DefaultErrorStatus(t *testing.T) {
	handler := WrapHTTP("analyzer", testService(&mocks.MockDatabase{}), func(ctx context.Context, r *http.Request, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, int, error) {
		return nil, 0, errors.New("boom")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when the handler gives no status", rec.Code)
	}
}

func TestWrapHTTP_LoggingFailureDoesNotFailRequest(t *testing.T) {
	db := &mocks.MockDatabase{
		SetExecutionFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			return errors.New("firestore down")
		},
	}

	handler := WrapHTTP("analyzer", testService(db), func(ctx context.Context, r *http.Request, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, int, error) {
		return map[string]string{"ok": "yes"}, 0, nil
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 despite execution logging failure", rec.Code)
	}
}

func TestWrapCloudEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var succeeded bool
		db := &mocks.MockDatabase{
			UpdateExecutionFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
				if data["status"] == "success" {
					succeeded = true
				}
				return nil
			},
		}

		wrapped := WrapCloudEvent("recorder", testService(db), func(ctx context.Context, e event.Event, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, error) {
			return map[string]string{"done": "true"}, nil
		})

		if err := wrapped(context.Background(), event.New()); err != nil {
			t.Fatalf("wrapped handler error = %v", err)
		}
		if !succeeded {
			t.Error("expected a success execution record")
		}
	})

	t.Run("handler error propagates for retry", func(t *testing.T) {
		wrapped := WrapCloudEvent("recorder", testService(&mocks.MockDatabase{}), func(ctx context.Context, e event.Event, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, error) {
			return nil, errors.New("transient")
		})

		if err := wrapped(context.Background(), event.New()); err == nil {
			t.Error("expected the handler error to propagate so Pub/Sub retries")
		}
	})
}
