// Package bootstrap initializes configuration, logging and the shared
// service dependencies for every function entry point.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"

	shared "github.com/formsight/formsight-server/pkg"
	"github.com/formsight/formsight-server/pkg/adapters"
	"github.com/formsight/formsight-server/pkg/analysis"
	"github.com/formsight/formsight-server/pkg/catalog"
	"github.com/formsight/formsight-server/pkg/detector"
)

// Config holds standard configuration for all services
type Config struct {
	ProjectID          string
	EnablePublish      bool
	GCSArtifactBucket  string
	DetectorURL        string
	DetectorSecretName string
	MinVisibility      float64
}

// Service holds initialized dependencies
type Service struct {
	DB       shared.Database
	Pub      shared.Publisher
	Store    shared.BlobStore
	Secrets  shared.SecretStore
	Detector detector.Detector
	Catalog  *catalog.Catalog
	Analyzer *analysis.Analyzer
	Config   *Config
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = shared.ProjectID // Fallback
	}

	minVis := analysis.DefaultMinVisibility
	if raw := os.Getenv("POSE_MIN_VISIBILITY"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v <= 1 {
			minVis = v
		}
	}

	detectorURL := os.Getenv("POSE_DETECTOR_URL")
	if detectorURL == "" {
		detectorURL = detector.DefaultConfig().URL
	}

	return &Config{
		ProjectID:          projectID,
		EnablePublish:      os.Getenv("ENABLE_PUBLISH") == "true",
		GCSArtifactBucket:  os.Getenv("GCS_ARTIFACT_BUCKET"),
		DetectorURL:        detectorURL,
		DetectorSecretName: os.Getenv("POSE_DETECTOR_SECRET"),
		MinVisibility:      minVis,
	}
}

// InitLogger configures structured logging with Cloud Logging compatible keys
func InitLogger() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Map standard keys to Cloud Logging keys
			if a.Key == slog.MessageKey {
				return slog.Attr{Key: "message", Value: a.Value}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{Key: "severity", Value: a.Value}
			}
			return a
		},
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)
}

// NewService initializes all standard dependencies. A catalog validation
// failure is fatal: the service must refuse to start rather than serve
// against inconsistent configuration.
func NewService(ctx context.Context) (*Service, error) {
	InitLogger()
	cfg := LoadConfig()

	slog.Info("Initializing service", "project_id", cfg.ProjectID)

	cat, err := catalog.New()
	if err != nil {
		slog.Error("Catalog validation failed", "error", err)
		return nil, fmt.Errorf("catalog init: %w", err)
	}

	// Firestore
	fsClient, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		slog.Error("Firestore init failed", "error", err)
		return nil, fmt.Errorf("firestore init: %w", err)
	}

	// Pub/Sub
	var pubAdapter shared.Publisher
	if cfg.EnablePublish {
		psClient, err := pubsub.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			slog.Error("PubSub init failed", "error", err)
			return nil, fmt.Errorf("pubsub init: %w", err)
		}
		pubAdapter = &adapters.PubSubAdapter{Client: psClient}
		slog.Info("Pub/Sub: REAL (ENABLE_PUBLISH=true)")
	} else {
		pubAdapter = &adapters.LogPublisher{}
		slog.Info("Pub/Sub: MOCK (LogPublisher)")
	}

	// Storage
	gcsClient, err := storage.NewClient(ctx)
	if err != nil {
		slog.Error("Storage init failed", "error", err)
		return nil, fmt.Errorf("storage init: %w", err)
	}

	secrets := &adapters.SecretsAdapter{}

	// Detector
	detCfg := detector.DefaultConfig()
	detCfg.URL = cfg.DetectorURL
	if cfg.DetectorSecretName != "" {
		key, err := secrets.GetSecret(ctx, cfg.ProjectID, cfg.DetectorSecretName)
		if err != nil {
			slog.Error("Detector secret fetch failed", "error", err)
			return nil, fmt.Errorf("detector secret: %w", err)
		}
		detCfg.APIKey = key
	}

	return &Service{
		DB:       &adapters.FirestoreAdapter{Client: fsClient},
		Pub:      pubAdapter,
		Store:    &adapters.StorageAdapter{Client: gcsClient},
		Secrets:  secrets,
		Detector: detector.NewRemote(detCfg),
		Catalog:  cat,
		Analyzer: analysis.NewAnalyzer(cat, analysis.WithMinVisibility(cfg.MinVisibility)),
		Config:   cfg,
	}, nil
}
