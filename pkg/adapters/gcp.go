// Package adapters implements the shared persistence, messaging, storage
// and secret interfaces on top of the GCP SDKs.
package adapters

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	shared "github.com/formsight/formsight-server/pkg"
)

// --- Firestore Adapter ---

type FirestoreAdapter struct {
	Client *firestore.Client
}

func (a *FirestoreAdapter) SetExecution(ctx context.Context, id string, data map[string]interface{}) error {
	var ref *firestore.DocumentRef
	if id == "" {
		ref = a.Client.Collection(shared.CollectionExecutions).NewDoc()
	} else {
		ref = a.Client.Collection(shared.CollectionExecutions).Doc(id)
	}
	_, err := ref.Set(ctx, data, firestore.MergeAll)
	return err
}

func (a *FirestoreAdapter) UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error {
	_, err := a.Client.Collection(shared.CollectionExecutions).Doc(id).Set(ctx, data, firestore.MergeAll)
	return err
}

// SetProgress stores one analysis progress record under the user document.
func (a *FirestoreAdapter) SetProgress(ctx context.Context, userID, id string, data map[string]interface{}) error {
	ref := a.Client.Collection(shared.CollectionUsers).Doc(userID).Collection(shared.CollectionProgress)
	var doc *firestore.DocumentRef
	if id == "" {
		doc = ref.NewDoc()
	} else {
		doc = ref.Doc(id)
	}
	_, err := doc.Set(ctx, data, firestore.MergeAll)
	return err
}

// ListSessionProgress returns every progress record of one session,
// ordered by timestamp.
func (a *FirestoreAdapter) ListSessionProgress(ctx context.Context, userID, sessionID string) ([]map[string]interface{}, error) {
	iter := a.Client.Collection(shared.CollectionUsers).Doc(userID).Collection(shared.CollectionProgress).
		Where("session_id", "==", sessionID).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var out []map[string]interface{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, snap.Data())
	}
	return out, nil
}

// --- PubSub Adapter ---

type PubSubAdapter struct {
	Client *pubsub.Client
}

func (a *PubSubAdapter) Publish(ctx context.Context, topicID string, data []byte) (string, error) {
	topic := a.Client.Topic(topicID)
	res := topic.Publish(ctx, &pubsub.Message{Data: data})
	return res.Get(ctx)
}

// LogPublisher is the mock publisher used when publishing is disabled; it
// logs instead of sending.
type LogPublisher struct{}

func (p *LogPublisher) Publish(ctx context.Context, topicID string, data []byte) (string, error) {
	slog.Info("Publish (mock)", "topic", topicID, "bytes", len(data))
	return "mock-message-id", nil
}

// --- Storage Adapter ---

type StorageAdapter struct {
	Client *storage.Client
}

func (a *StorageAdapter) Write(ctx context.Context, bucketName, objectName string, data []byte) error {
	wc := a.Client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	if _, err := wc.Write(data); err != nil {
		return err
	}
	return wc.Close()
}

func (a *StorageAdapter) Read(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	rc, err := a.Client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// --- Secrets Adapter ---

type SecretsAdapter struct{}

func (a *SecretsAdapter) GetSecret(ctx context.Context, projectID, secretName string) (string, error) {
	// 1. Local Fallback
	if val := os.Getenv(secretName); val != "" {
		slog.Info("Using local env var for secret", "name", secretName)
		return val, nil
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretName)
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	}

	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to access secret version: %v", err)
	}

	// Verify the data checksum.
	crc32c := crc32.MakeTable(crc32.Castagnoli)
	checksum := int64(crc32.Checksum(result.Payload.Data, crc32c))
	if result.Payload.DataCrc32C != nil && *result.Payload.DataCrc32C != checksum {
		return "", fmt.Errorf("data corruption detected")
	}

	return string(result.Payload.Data), nil
}
