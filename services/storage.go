package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"price_tag_app_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// AssetScheme prefixes background references served by the asset store
const AssetScheme = "asset://"

// StaticRoot is served under StaticMount; local assets get a public URL only
// when they sit below it
const (
	StaticRoot  = "static"
	StaticMount = "/static"
)

var ErrInvalidAssetKey = errors.New("invalid asset key")

// AssetStore provides read access to artwork such as tag backgrounds
type AssetStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, string, error) // Returns reader, content-type, error
	GetPublicURL(key string) string
	IsConfigured() bool
}

// InitializeAssetStore picks R2 when it is configured and reachable, local
// disk otherwise
func InitializeAssetStore(cfg *config.Config, logger *zap.Logger) AssetStore {
	local := func() AssetStore {
		store := NewLocalStorage(cfg.AssetDir)
		if store.urlPrefix == "" {
			logger.Warn("Asset directory is outside the static root, assets will only be embedded",
				zap.String("path", cfg.AssetDir), zap.String("static_root", StaticRoot))
		}
		logger.Info("Asset store ready (Local filesystem)", zap.String("path", cfg.AssetDir))
		return store
	}

	if !cfg.R2Configured() {
		return local()
	}

	r2, err := NewR2Storage(cfg)
	if err != nil {
		logger.Warn("Failed to initialize R2 storage, falling back to local storage", zap.Error(err))
		return local()
	}

	// Test R2 connection (HeadBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &cfg.R2BucketName}); err != nil {
		logger.Warn("R2 bucket connection test failed, falling back to local storage", zap.Error(err))
		return local()
	}

	logger.Info("Asset store ready (Cloudflare R2)", zap.String("bucket", cfg.R2BucketName))
	return r2
}

// R2Storage implements AssetStore for Cloudflare R2
type R2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewR2Storage creates a new R2 storage provider
func NewR2Storage(cfg *config.Config) (*R2Storage, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Storage{
		client:    client,
		bucket:    cfg.R2BucketName,
		publicURL: cfg.R2PublicURL,
	}, nil
}

// IsConfigured returns true if R2 is properly configured
func (r *R2Storage) IsConfigured() bool {
	return r.client != nil && r.bucket != ""
}

// Get retrieves an object from R2
func (r *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object from R2: %w", err)
	}

	contentType := "application/octet-stream"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}

	return result.Body, contentType, nil
}

// GetPublicURL returns the public URL for an object, or "" when the bucket
// has no public domain
func (r *R2Storage) GetPublicURL(key string) string {
	if r.publicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.publicURL, "/"), key)
	}
	return ""
}

// LocalStorage implements AssetStore for the local filesystem
type LocalStorage struct {
	baseDir   string
	urlPrefix string
}

// NewLocalStorage creates a new local storage provider
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: staticURLPrefix(baseDir)}
}

// IsConfigured returns true (local storage is always available)
func (l *LocalStorage) IsConfigured() bool {
	return true
}

// Get opens an asset below the base directory
func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath, err := l.resolve(key)
	if err != nil {
		return nil, "", err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	return file, contentTypeFor(key), nil
}

// GetPublicURL returns the path the static handler serves the asset under,
// or "" when the base directory is not below StaticRoot
func (l *LocalStorage) GetPublicURL(key string) string {
	if l.urlPrefix == "" || key == "" {
		return ""
	}
	return path.Join(l.urlPrefix, path.Clean("/"+filepath.ToSlash(key)))
}

// staticURLPrefix maps a directory below StaticRoot to its URL under
// StaticMount
func staticURLPrefix(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return ""
	}
	rel, err := filepath.Rel(StaticRoot, filepath.Clean(dir))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return path.Join(StaticMount, filepath.ToSlash(rel))
}

func (l *LocalStorage) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if key == "" || clean == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetKey, key)
	}
	return filepath.Join(l.baseDir, clean), nil
}

// contentTypeFor detects content type from the extension
func contentTypeFor(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	}
	return "application/octet-stream"
}

// AssetKey extracts the store key from an asset:// reference
func AssetKey(ref string) (string, bool) {
	if !strings.HasPrefix(ref, AssetScheme) {
		return "", false
	}
	key := strings.TrimPrefix(ref, AssetScheme)
	return key, key != ""
}
