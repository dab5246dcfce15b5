// Package mocks provides function-field mocks for the shared interfaces.
package mocks

import (
	"context"

	"github.com/formsight/formsight-server/pkg/pose"
)

// MockDatabase implements shared.Database with overridable funcs.
type MockDatabase struct {
	SetExecutionFunc        func(ctx context.Context, id string, data map[string]interface{}) error
	UpdateExecutionFunc     func(ctx context.Context, id string, data map[string]interface{}) error
	SetProgressFunc         func(ctx context.Context, userID, id string, data map[string]interface{}) error
	ListSessionProgressFunc func(ctx context.Context, userID, sessionID string) ([]map[string]interface{}, error)
}

func (m *MockDatabase) SetExecution(ctx context.Context, id string, data map[string]interface{}) error {
	if m.SetExecutionFunc != nil {
		return m.SetExecutionFunc(ctx, id, data)
	}
	return nil
}

func (m *MockDatabase) UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error {
	if m.UpdateExecutionFunc != nil {
		return m.UpdateExecutionFunc(ctx, id, data)
	}
	return nil
}

func (m *MockDatabase) SetProgress(ctx context.Context, userID, id string, data map[string]interface{}) error {
	if m.SetProgressFunc != nil {
		return m.SetProgressFunc(ctx, userID, id, data)
	}
	return nil
}

func (m *MockDatabase) ListSessionProgress(ctx context.Context, userID, sessionID string) ([]map[string]interface{}, error) {
	if m.ListSessionProgressFunc != nil {
		return m.ListSessionProgressFunc(ctx, userID, sessionID)
	}
	return nil, nil
}

// MockPublisher implements shared.Publisher.
type MockPublisher struct {
	PublishFunc func(ctx context.Context, topic string, data []byte) (string, error)
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, data []byte) (string, error) {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, data)
	}
	return "mock-id", nil
}

// MockBlobStore implements shared.BlobStore.
type MockBlobStore struct {
	WriteFunc func(ctx context.Context, bucket, object string, data []byte) error
	ReadFunc  func(ctx context.Context, bucket, object string) ([]byte, error)
}

func (m *MockBlobStore) Write(ctx context.Context, bucket, object string, data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, bucket, object, data)
	}
	return nil
}

func (m *MockBlobStore) Read(ctx context.Context, bucket, object string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, bucket, object)
	}
	return nil, nil
}

// MockSecretStore implements shared.SecretStore.
type MockSecretStore struct {
	GetSecretFunc func(ctx context.Context, projectID, name string) (string, error)
}

func (m *MockSecretStore) GetSecret(ctx context.Context, projectID, name string) (string, error) {
	if m.GetSecretFunc != nil {
		return m.GetSecretFunc(ctx, projectID, name)
	}
	return "", nil
}

// MockDetector implements detector.Detector.
type MockDetector struct {
	DetectFunc func(ctx context.Context, frame []byte) (pose.Snapshot, error)
}

func (m *MockDetector) Detect(ctx context.Context, frame []byte) (pose.Snapshot, error) {
	if m.DetectFunc != nil {
		return m.DetectFunc(ctx, frame)
	}
	return nil, nil
}

func (m *MockDetector) Close() error { return nil }
