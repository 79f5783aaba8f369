package services

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"najma_site_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaStore resolves and publishes the site's images and video
type MediaStore interface {
	UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*MediaResult, error)
	GetPublicURL(key string) string
	IsConfigured() bool
}

// MediaResult contains information about a published file
type MediaResult struct {
	Key      string
	FileSize int64
	MimeType string
	URL      string
}

// Media is the global media store used by the page templates
var Media MediaStore = NewLocalStorage("static", "/static")

// InitializeMedia picks R2 when it is fully configured with a public URL, local static files otherwise
func InitializeMedia(cfg *config.Config) {
	if cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != "" && cfg.R2PublicURL != "" {
		r2, err := NewR2Storage(cfg)
		if err != nil {
			log.Printf("[WARNING] Failed to initialize R2 storage: %v. Falling back to local static files.", err)
			Media = NewLocalStorage(cfg.StaticDir, "/static")
			return
		}
		Media = r2
		log.Printf("Media served from Cloudflare R2 (bucket: %s)", cfg.R2BucketName)
		return
	}

	Media = NewLocalStorage(cfg.StaticDir, "/static")
	log.Printf("Media served from local static files (path: %s)", cfg.StaticDir)
}

// R2Storage implements MediaStore for Cloudflare R2
type R2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewR2Storage creates a new R2 storage provider
func NewR2Storage(cfg *config.Config) (*R2Storage, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(
		cfg.R2AccessKeyID,
		cfg.R2SecretAccessKey,
		"",
	)

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

// UploadReader uploads content from a reader to R2
func (r *R2Storage) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*MediaResult, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=604800"),
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload to R2: %w", err)
	}

	return &MediaResult{
		Key:      key,
		FileSize: size,
		MimeType: contentType,
		URL:      r.GetPublicURL(key),
	}, nil
}

// GetPublicURL returns the public URL for a file
func (r *R2Storage) GetPublicURL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.publicURL, "/"), escapeKey(key))
}

// LocalStorage implements MediaStore for files served by the app itself
type LocalStorage struct {
	baseDir   string
	urlPrefix string
}

// NewLocalStorage serves files in baseDir under urlPrefix
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// IsConfigured returns true (local storage is always available)
func (l *LocalStorage) IsConfigured() bool {
	return true
}

// UploadReader saves content from a reader to the local directory
func (l *LocalStorage) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*MediaResult, error) {
	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &MediaResult{
		Key:      key,
		FileSize: written,
		MimeType: contentType,
		URL:      l.GetPublicURL(key),
	}, nil
}

// GetPublicURL returns the URL the static handler serves the file under
func (l *LocalStorage) GetPublicURL(key string) string {
	return l.urlPrefix + "/" + escapeKey(key)
}

// escapeKey percent-encodes each path segment so names with spaces stay valid URLs
func escapeKey(key string) string {
	segments := strings.Split(strings.TrimPrefix(path.Clean("/"+key), "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// PublishMedia uploads every file under srcDir to the store, keyed by its relative path
func PublishMedia(ctx context.Context, store MediaStore, srcDir string) ([]*MediaResult, error) {
	var published []*MediaResult

	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(p)))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}
		defer f.Close()

		uploadCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		result, err := store.UploadReader(uploadCtx, f, key, contentType, info.Size())
		if err != nil {
			return fmt.Errorf("failed to publish %s: %w", key, err)
		}
		log.Printf("[INFO] Published %s (%d bytes) -> %s", key, result.FileSize, result.URL)
		published = append(published, result)
		return nil
	})
	if err != nil {
		return published, err
	}
	return published, nil
}
