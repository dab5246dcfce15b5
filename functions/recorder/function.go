// Package recorder consumes analysis-completed events and maintains
// per-user progress records, exporting a FIT activity file when a
// session finishes.
package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/formsight/formsight-server/pkg/bootstrap"
	"github.com/formsight/formsight-server/pkg/export"
	"github.com/formsight/formsight-server/pkg/framework"
	"github.com/formsight/formsight-server/pkg/types"
)

var (
	svc     *bootstrap.Service
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.CloudEvent("RecordAnalysis", RecordAnalysis)
}

func initService(ctx context.Context) (*bootstrap.Service, error) {
	if svc != nil {
		return svc, nil
	}
	svcOnce.Do(func() {
		svc, svcErr = bootstrap.NewService(ctx)
		if svcErr != nil {
			slog.Error("Failed to initialize service", "error", svcErr)
		}
	})
	return svc, svcErr
}

// RecordAnalysis is the entry point for EventArc triggers on the
// analysis-completed topic.
func RecordAnalysis(ctx context.Context, e cloudevents.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("recorder", svc, recordHandler)(ctx, e)
}

func recordHandler(ctx context.Context, e event.Event, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, error) {
	var msg types.PubSubMessage
	if err := e.DataAs(&msg); err != nil {
		return nil, fmt.Errorf("failed to get data: %v", err)
	}

	var evt types.AnalysisEvent
	if err := json.Unmarshal(msg.Message.Data, &evt); err != nil {
		return nil, fmt.Errorf("json unmarshal: %v", err)
	}
	if evt.UserID == "" || evt.AnalysisID == "" {
		return nil, fmt.Errorf("event missing user_id or analysis_id")
	}

	record := map[string]interface{}{
		"analysis_id": evt.AnalysisID,
		"session_id":  evt.SessionID,
		"exercise":    evt.Exercise,
		"status":      evt.Status,
		"confidence":  evt.Confidence,
		"feedback":    evt.Feedback,
		"angles":      evt.Angles,
		"timestamp":   evt.Timestamp,
	}
	if err := svc.DB.SetProgress(ctx, evt.UserID, evt.AnalysisID, record); err != nil {
		return nil, fmt.Errorf("set progress: %w", err)
	}
	logger.Info("Progress recorded",
		"user_id", evt.UserID,
		"session_id", evt.SessionID,
		"exercise", evt.Exercise,
		"status", evt.Status)

	outputs := map[string]interface{}{
		"analysis_id": evt.AnalysisID,
		"user_id":     evt.UserID,
	}

	if evt.SessionEnd && evt.SessionID != "" {
		object, err := exportSession(ctx, svc, logger, evt.UserID, evt.SessionID)
		if err != nil {
			return nil, err
		}
		outputs["session_artifact"] = object
	}

	return outputs, nil
}

// exportSession encodes the whole session as a FIT activity and writes
// it to the artifact bucket.
func exportSession(ctx context.Context, svc *bootstrap.Service, logger *slog.Logger, userID, sessionID string) (string, error) {
	docs, err := svc.DB.ListSessionProgress(ctx, userID, sessionID)
	if err != nil {
		return "", fmt.Errorf("list session progress: %w", err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("session %s has no progress records", sessionID)
	}

	records := make([]export.SessionRecord, 0, len(docs))
	for _, doc := range docs {
		rec := export.SessionRecord{}
		rec.Exercise, _ = doc["exercise"].(string)
		rec.Status, _ = doc["status"].(string)
		rec.Confidence, _ = doc["confidence"].(float64)
		if ts, ok := doc["timestamp"].(time.Time); ok {
			rec.Timestamp = ts
		}
		records = append(records, rec)
	}

	data, err := export.GenerateSessionFile(records)
	if err != nil {
		return "", fmt.Errorf("generate session file: %w", err)
	}

	bucket := svc.Config.GCSArtifactBucket
	if bucket == "" {
		logger.Warn("No artifact bucket configured; skipping session export", "session_id", sessionID)
		return "", nil
	}

	object := fmt.Sprintf("sessions/%s/%s.fit", userID, sessionID)
	if err := svc.Store.Write(ctx, bucket, object, data); err != nil {
		return "", fmt.Errorf("write session artifact: %w", err)
	}
	logger.Info("Session artifact written", "bucket", bucket, "object", object, "bytes", len(data))
	return object, nil
}
