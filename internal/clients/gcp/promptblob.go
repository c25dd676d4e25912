package gcp

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

const promptContentType = "text/markdown"

// PromptBlobStore holds the literal template text for each (topic, slot)
// pair. Keys are deterministic; overwrites are last-writer-wins, there is
// no versioning beyond "latest".
type PromptBlobStore interface {
	Save(ctx context.Context, topicID string, slot topics.Slot, content string) (string, error)
	Get(ctx context.Context, topicID string, slot topics.Slot) (string, bool, error)
	Delete(ctx context.Context, topicID string, slot topics.Slot) error
	Exists(ctx context.Context, topicID string, slot topics.Slot) (bool, error)
	ListSlots(ctx context.Context, topicID string) ([]topics.Slot, error)
	Bucket() string
}

// PromptKey is the canonical blob key for a (topic, slot) pair.
func PromptKey(topicID string, slot topics.Slot) string {
	return fmt.Sprintf("prompts/%s/%s.md", topicID, slot)
}

type promptBlobStore struct {
	log    *logger.Logger
	client *storage.Client
	bucket string
}

func NewPromptBlobStore(log *logger.Logger) (PromptBlobStore, error) {
	serviceLog := log.With("service", "PromptBlobStore")

	bucket := strings.TrimSpace(os.Getenv("PROMPT_GCS_BUCKET_NAME"))
	if bucket == "" {
		return nil, fmt.Errorf("missing env var PROMPT_GCS_BUCKET_NAME")
	}

	opts := ClientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &promptBlobStore{
		log:    serviceLog,
		client: client,
		bucket: bucket,
	}, nil
}

func (s *promptBlobStore) Bucket() string { return s.bucket }

func (s *promptBlobStore) Save(ctx context.Context, topicID string, slot topics.Slot, content string) (string, error) {
	key := PromptKey(topicID, slot)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = promptContentType
	if _, err := io.WriteString(w, content); err != nil {
		_ = w.Close()
		return "", &topics.BlobStorageError{Op: "save", Key: key, Err: err}
	}
	if err := w.Close(); err != nil {
		return "", &topics.BlobStorageError{Op: "save", Key: key, Err: err}
	}
	return key, nil
}

// Get returns ("", false, nil) when the blob does not exist; callers decide
// whether absence is a problem.
func (s *promptBlobStore) Get(ctx context.Context, topicID string, slot topics.Slot) (string, bool, error) {
	key := PromptKey(topicID, slot)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err == storage.ErrObjectNotExist {
		return "", false, nil
	}
	if err != nil {
		return "", false, &topics.BlobStorageError{Op: "get", Key: key, Err: err}
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", false, &topics.BlobStorageError{Op: "get", Key: key, Err: err}
	}
	return string(raw), true, nil
}

func (s *promptBlobStore) Delete(ctx context.Context, topicID string, slot topics.Slot) error {
	key := PromptKey(topicID, slot)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err == storage.ErrObjectNotExist {
		return nil
	}
	if err != nil {
		return &topics.BlobStorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *promptBlobStore) Exists(ctx context.Context, topicID string, slot topics.Slot) (bool, error) {
	key := PromptKey(topicID, slot)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := s.client.Bucket(s.bucket).Object(key).Attrs(ctx)
	if err == storage.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, &topics.BlobStorageError{Op: "exists", Key: key, Err: err}
	}
	return true, nil
}

func (s *promptBlobStore) ListSlots(ctx context.Context, topicID string) ([]topics.Slot, error) {
	prefix := fmt.Sprintf("prompts/%s/", topicID)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	out := []topics.Slot{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &topics.BlobStorageError{Op: "list", Key: prefix, Err: err}
		}
		name := strings.TrimSuffix(path.Base(attrs.Name), ".md")
		out = append(out, topics.Slot(name))
	}
	return out, nil
}
