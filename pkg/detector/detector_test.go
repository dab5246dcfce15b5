package detector

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
	"github.com/formsight/formsight-server/pkg/pose"
)

func TestParseLandmarks(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		data := []byte(`{
			"left_knee":  {"x": 0.5, "y": 0.7, "visibility": 0.9},
			"right_knee": {"x": 0.5, "y": 0.7, "visibility": 0.8}
		}`)
		snap, err := ParseLandmarks(data)
		if err != nil {
			t.Fatalf("ParseLandmarks() error = %v", err)
		}
		if len(snap) != 2 {
			t.Errorf("ParseLandmarks() returned %d landmarks, want 2", len(snap))
		}
		if lm, ok := snap.Get(pose.LeftKnee, 0.5); !ok || lm.Y != 0.7 {
			t.Errorf("left knee = %+v (present=%v), want y=0.7", lm, ok)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseLandmarks([]byte(`{"left_knee": `))
		if !errors.Is(err, ferrors.ErrInvalidLandmarks) {
			t.Errorf("ParseLandmarks() error = %v, want ErrInvalidLandmarks", err)
		}
	})

	t.Run("unknown landmark rejected", func(t *testing.T) {
		_, err := ParseLandmarks([]byte(`{"left_eyebrow": {"x": 0.5, "y": 0.5, "visibility": 1}}`))
		if !errors.Is(err, ferrors.ErrInvalidLandmarks) {
			t.Errorf("ParseLandmarks() error = %v, want ErrInvalidLandmarks", err)
		}
	})

	t.Run("out of range coordinate rejected", func(t *testing.T) {
		_, err := ParseLandmarks([]byte(`{"left_knee": {"x": 1.5, "y": 0.5, "visibility": 1}}`))
		if !errors.Is(err, ferrors.ErrInvalidLandmarks) {
			t.Errorf("ParseLandmarks() error = %v, want ErrInvalidLandmarks", err)
		}
	})
}

func TestRemote_Detect(t *testing.T) {
	frame := []byte("not-really-a-jpeg")

	t.Run("pose detected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/detect" {
				t.Errorf("path = %q, want /detect", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("Authorization = %q, want Bearer test-key", got)
			}

			var req struct {
				Image string `json:"image"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("request decode: %v", err)
			}
			if req.Image != base64.StdEncoding.EncodeToString(frame) {
				t.Error("frame not base64-encoded in request")
			}

			json.NewEncoder(w).Encode(map[string]interface{}{
				"pose_detected": true,
				"landmarks": map[string]interface{}{
					"left_knee": map[string]float64{"x": 0.5, "y": 0.7, "visibility": 0.9},
				},
			})
		}))
		defer srv.Close()

		det := NewRemote(Config{URL: srv.URL, APIKey: "test-key", Timeout: time.Second})
		snap, err := det.Detect(context.Background(), frame)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if _, ok := snap.Get(pose.LeftKnee, 0.5); !ok {
			t.Errorf("Detect() snapshot = %v, want left knee present", snap)
		}
	})

	t.Run("no pose is nil not error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"pose_detected": false})
		}))
		defer srv.Close()

		det := NewRemote(Config{URL: srv.URL, Timeout: time.Second})
		snap, err := det.Detect(context.Background(), frame)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if snap != nil {
			t.Errorf("Detect() snapshot = %v, want nil", snap)
		}
	})

	t.Run("non-200 is a detector response error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		det := NewRemote(Config{URL: srv.URL, Timeout: time.Second})
		_, err := det.Detect(context.Background(), frame)
		if !errors.Is(err, ferrors.ErrDetectorResponse) {
			t.Errorf("Detect() error = %v, want ErrDetectorResponse", err)
		}
	})

	t.Run("unreachable sidecar is retryable", func(t *testing.T) {
		det := NewRemote(Config{URL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
		_, err := det.Detect(context.Background(), frame)
		if !errors.Is(err, ferrors.ErrDetectorUnavailable) {
			t.Fatalf("Detect() error = %v, want ErrDetectorUnavailable", err)
		}
		if !ferrors.IsRetryable(err) {
			t.Error("expected unreachable detector error to be retryable")
		}
	})

	t.Run("invalid landmarks rejected at the boundary", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"pose_detected": true,
				"landmarks": map[string]interface{}{
					"left_knee": map[string]float64{"x": 3.0, "y": 0.7, "visibility": 0.9},
				},
			})
		}))
		defer srv.Close()

		det := NewRemote(Config{URL: srv.URL, Timeout: time.Second})
		_, err := det.Detect(context.Background(), frame)
		if !errors.Is(err, ferrors.ErrInvalidLandmarks) {
			t.Errorf("Detect() error = %v, want ErrInvalidLandmarks", err)
		}
	})
}

func TestStatic_Detect(t *testing.T) {
	want := pose.Snapshot{pose.Nose: {X: 0.5, Y: 0.1, Visibility: 1}}
	det := NewStatic(want)

	snap, err := det.Detect(context.Background(), nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(snap) != 1 {
		t.Errorf("Detect() = %v, want the fixed snapshot", snap)
	}
}
