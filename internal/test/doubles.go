package test

import (
	"context"
	"sync"
	"time"

	"github.com/attesto/attesto/internal/domain/model"
)

// NotifierStub records dispatched notifications.
type NotifierStub struct {
	mu    sync.Mutex
	Items []model.Notification
}

// Notify appends the notification to the recorded list.
func (s *NotifierStub) Notify(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Items = append(s.Items, n)
}

// Sent returns a copy of recorded notifications.
func (s *NotifierStub) Sent() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.Items))
	copy(out, s.Items)
	return out
}

// PaymentGatewayStub simulates hosted checkout session creation.
type PaymentGatewayStub struct {
	CreateSessionFn func(context.Context, string, int64, string) (string, string, error)
	Sessions        []string
}

func (s *PaymentGatewayStub) CreateSession(ctx context.Context, orderID string, priceCents int64, description string) (string, string, error) {
	s.Sessions = append(s.Sessions, orderID)
	if s.CreateSessionFn != nil {
		return s.CreateSessionFn(ctx, orderID, priceCents, description)
	}
	return "sess-" + orderID, "https://pay.example/sess-" + orderID, nil
}

// BlobCall records one blob store invocation.
type BlobCall struct {
	Op          string
	Bucket      string
	Path        string
	ContentType string
	Size        int
}

// BlobStoreStub simulates the document store.
type BlobStoreStub struct {
	UploadFn    func(context.Context, string, string, []byte, string) error
	DeleteFn    func(context.Context, string, string) error
	SignedURLFn func(context.Context, string, string, time.Duration) (string, error)

	Calls []BlobCall
}

func (s *BlobStoreStub) Upload(ctx context.Context, bucket, blobPath string, data []byte, contentType string) error {
	s.Calls = append(s.Calls, BlobCall{Op: "upload", Bucket: bucket, Path: blobPath, ContentType: contentType, Size: len(data)})
	if s.UploadFn != nil {
		return s.UploadFn(ctx, bucket, blobPath, data, contentType)
	}
	return nil
}

func (s *BlobStoreStub) Delete(ctx context.Context, bucket, blobPath string) error {
	s.Calls = append(s.Calls, BlobCall{Op: "delete", Bucket: bucket, Path: blobPath})
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, bucket, blobPath)
	}
	return nil
}

func (s *BlobStoreStub) SignedURL(ctx context.Context, bucket, blobPath string, ttl time.Duration) (string, error) {
	s.Calls = append(s.Calls, BlobCall{Op: "sign", Bucket: bucket, Path: blobPath})
	if s.SignedURLFn != nil {
		return s.SignedURLFn(ctx, bucket, blobPath, ttl)
	}
	return "https://store.example/signed/" + bucket + "/" + blobPath, nil
}

// SenderStub records notifications handed to the delivery channel.
type SenderStub struct {
	mu     sync.Mutex
	SendFn func(context.Context, model.Notification) error
	Items  []model.Notification
}

func (s *SenderStub) Send(ctx context.Context, n model.Notification) error {
	s.mu.Lock()
	s.Items = append(s.Items, n)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, n)
	}
	return nil
}

// Sent returns a copy of recorded notifications.
func (s *SenderStub) Sent() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.Items))
	copy(out, s.Items)
	return out
}
