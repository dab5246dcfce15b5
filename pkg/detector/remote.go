package detector

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
	"github.com/formsight/formsight-server/pkg/pose"
)

// Remote calls the ML landmark sidecar over HTTP.
type Remote struct {
	cfg    Config
	client *http.Client
}

// NewRemote returns a Remote detector for cfg.
func NewRemote(cfg Config) *Remote {
	return &Remote{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// detectRequest is the sidecar's request payload: a base64-encoded frame.
type detectRequest struct {
	Image string `json:"image"`
}

// detectResponse mirrors the sidecar's response shape.
type detectResponse struct {
	PoseDetected bool                        `json:"pose_detected"`
	Landmarks    map[pose.Name]pose.Landmark `json:"landmarks"`
}

// Detect sends the frame to the sidecar and maps its response into a
// validated snapshot. A "no pose" response returns (nil, nil).
func (r *Remote) Detect(ctx context.Context, frame []byte) (pose.Snapshot, error) {
	body, err := json.Marshal(detectRequest{
		Image: base64.StdEncoding.EncodeToString(frame),
	})
	if err != nil {
		return nil, ferrors.ErrDetectorResponse.WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL+"/detect", bytes.NewReader(body))
	if err != nil {
		return nil, ferrors.ErrDetectorUnavailable.WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, ferrors.ErrDetectorUnavailable.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, ferrors.ErrDetectorResponse.
			WithMessage(fmt.Sprintf("detector returned status %d", resp.StatusCode)).
			WithMetadata("body", string(payload))
	}

	var dr detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, ferrors.ErrDetectorResponse.WithCause(err)
	}

	if !dr.PoseDetected || len(dr.Landmarks) == 0 {
		return nil, nil
	}

	snap := pose.Snapshot(dr.Landmarks)
	if err := pose.Validate(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Close is a no-op; the underlying http.Client needs no teardown.
func (r *Remote) Close() error { return nil }
