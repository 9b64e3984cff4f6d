package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// ProviderGCS is recorded as the provider of assets stored in Google Cloud Storage
const ProviderGCS = "gcs"

// BlobStore stores uploaded media and returns a public locator for it
type BlobStore interface {
	// Upload writes r to path and returns the object's public URL
	Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
	Bucket() string
	Provider() string
}

// Options configures the GCS store
type Options struct {
	Bucket          string
	PublicBaseURL   string
	CredentialsFile string
	EmulatorHost    string
	UploadTimeout   time.Duration
}

// GCSStore implements BlobStore on a single Google Cloud Storage bucket
type GCSStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
	emulatorHost  string
	uploadTimeout time.Duration
}

// Ensure GCSStore implements BlobStore
var _ BlobStore = (*GCSStore)(nil)

// NewGCSStore creates a store for opts.Bucket. With an emulator host the client
// runs unauthenticated against it.
func NewGCSStore(ctx context.Context, opts Options) (*GCSStore, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	base, err := normalizeBaseURL(opts.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	if opts.UploadTimeout == 0 {
		opts.UploadTimeout = 2 * time.Minute
	}

	emulator := strings.TrimRight(strings.TrimSpace(opts.EmulatorHost), "/")
	var clientOpts []option.ClientOption
	switch {
	case emulator != "":
		_ = os.Setenv("STORAGE_EMULATOR_HOST", emulator)
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile), option.WithScopes(storage.ScopeReadWrite))
	default:
		clientOpts = append(clientOpts, option.WithScopes(storage.ScopeReadWrite))
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSStore{
		client:        client,
		bucket:        opts.Bucket,
		publicBaseURL: base,
		emulatorHost:  emulator,
		uploadTimeout: opts.UploadTimeout,
	}, nil
}

// Upload writes the object and returns its public URL
func (s *GCSStore) Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return s.PublicURL(path), nil
}

// Delete removes the object at path
func (s *GCSStore) Delete(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.client.Bucket(s.bucket).Object(path).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete GCS object %q in bucket %q: %w", path, s.bucket, err)
	}
	return nil
}

// Bucket returns the bucket name
func (s *GCSStore) Bucket() string {
	return s.bucket
}

// Provider returns the provider name recorded on assets
func (s *GCSStore) Provider() string {
	return ProviderGCS
}

// PublicURL builds the URL clients use to fetch the object at path
func (s *GCSStore) PublicURL(path string) string {
	return publicURL(s.publicBaseURL, s.emulatorHost, s.bucket, path)
}

// Close releases the underlying client
func (s *GCSStore) Close() error {
	return s.client.Close()
}

func publicURL(base, emulator, bucket, path string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	switch {
	case base != "":
		return fmt.Sprintf("%s/%s/%s", base, bucket, path)
	case emulator != "":
		return fmt.Sprintf("%s/storage/v1/b/%s/o/%s?alt=media", emulator, bucket, url.PathEscape(path))
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, path)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid public base URL %q; expected absolute URL like https://cdn.example.com", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
