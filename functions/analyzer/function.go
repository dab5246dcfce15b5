// Package analyzer exposes the pose analysis HTTP entry point.
package analyzer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/google/uuid"

	shared "github.com/formsight/formsight-server/pkg"
	"github.com/formsight/formsight-server/pkg/analysis"
	"github.com/formsight/formsight-server/pkg/bootstrap"
	"github.com/formsight/formsight-server/pkg/detector"
	fserrors "github.com/formsight/formsight-server/pkg/errors"
	"github.com/formsight/formsight-server/pkg/framework"
	"github.com/formsight/formsight-server/pkg/pose"
	"github.com/formsight/formsight-server/pkg/types"
)

var (
	svc     *bootstrap.Service
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.HTTP("AnalyzePose", AnalyzePose)
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

// AnalyzePose is the entry point for POST /api/pose/analyze.
func AnalyzePose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	svc, err := initService(ctx)
	if err != nil {
		slog.Error("Service init failed", "error", err)
		http.Error(w, fmt.Sprintf("service init failed: %v", err), http.StatusInternalServerError)
		return
	}

	framework.WrapHTTP("analyzer", svc, handleAnalyze)(w, r)
}

// analyzeRequest carries either an encoded camera frame or an inline
// landmark snapshot, plus optional session identity for progress events.
type analyzeRequest struct {
	Image      string          `json:"image,omitempty"`
	Landmarks  json.RawMessage `json:"landmarks,omitempty"`
	UserID     string          `json:"user_id,omitempty"`
	SessionID  string          `json:"session_id,omitempty"`
	SessionEnd bool            `json:"session_end,omitempty"`
}

func handleAnalyze(ctx context.Context, r *http.Request, svc *bootstrap.Service, logger *slog.Logger, execID string) (interface{}, int, error) {
	if r.Method != http.MethodPost {
		return nil, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("read body: %w", err)
	}
	defer r.Body.Close()

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, http.StatusBadRequest, fserrors.ErrInvalidImage.WithCause(err).WithMessage("Request body is not valid JSON")
	}
	if req.Image == "" && len(req.Landmarks) == 0 {
		return nil, http.StatusBadRequest, fserrors.ErrInvalidImage.WithMessage("Request must include an image or landmarks")
	}

	var snap pose.Snapshot
	var frame []byte

	switch {
	case len(req.Landmarks) > 0:
		snap, err = detector.ParseLandmarks(req.Landmarks)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
	default:
		frame, err = decodeFrame(req.Image)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		snap, err = svc.Detector.Detect(ctx, frame)
		if err != nil {
			return nil, http.StatusBadGateway, err
		}
	}

	result := svc.Analyzer.Analyze(snap)
	logger.Info("Analysis complete",
		"exercise", result.Exercise,
		"status", result.Status,
		"confidence", result.Confidence)

	analysisID := uuid.New().String()

	if frame != nil && svc.Config.GCSArtifactBucket != "" {
		object := fmt.Sprintf("frames/%s.jpg", analysisID)
		if err := svc.Store.Write(ctx, svc.Config.GCSArtifactBucket, object, frame); err != nil {
			logger.Warn("Frame archive failed", "object", object, "error", err)
		}
	}

	if req.UserID != "" {
		evt := types.AnalysisEvent{
			AnalysisID: analysisID,
			UserID:     req.UserID,
			SessionID:  req.SessionID,
			Exercise:   result.Exercise,
			Status:     string(result.Status),
			Confidence: result.Confidence,
			Feedback:   result.Feedback,
			Angles:     eventAngles(result.Angles),
			Timestamp:  time.Now().UTC(),
			SessionEnd: req.SessionEnd,
		}
		payload, err := json.Marshal(evt)
		if err != nil {
			logger.Error("Event marshal failed", "error", err)
		} else if msgID, err := svc.Pub.Publish(ctx, shared.TopicAnalysisCompleted, payload); err != nil {
			logger.Error("Event publish failed", "error", err)
		} else {
			logger.Info("Published analysis event", "message_id", msgID, "analysis_id", analysisID)
		}
	}

	return result, http.StatusOK, nil
}

// maxBodyBytes bounds request bodies; a 1080p JPEG frame base64-encodes
// well under this.
const maxBodyBytes = 16 << 20

// decodeFrame decodes a base64 image, with or without a data-URL prefix
// such as "data:image/jpeg;base64,".
func decodeFrame(image string) ([]byte, error) {
	raw := image
	if idx := strings.Index(raw, ","); idx >= 0 && strings.HasPrefix(raw, "data:") {
		raw = raw[idx+1:]
	}
	frame, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fserrors.ErrInvalidImage.WithCause(err)
	}
	if len(frame) == 0 {
		return nil, fserrors.ErrInvalidImage.WithMessage("Decoded image is empty")
	}
	return frame, nil
}

func eventAngles(angles analysis.AngleSet) map[string]float64 {
	out := make(map[string]float64, len(angles))
	for name, value := range angles {
		out[string(name)] = value
	}
	return out
}
