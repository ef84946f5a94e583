package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vimco/vimco-api/internal/config"
)

// Store persists an uploaded object and returns a publicly reachable URL for it.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// LocalStore writes objects below Dir; the router serves Dir under /images.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocal(cfg *config.Config) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		Dir:     cfg.Upload.Dir,
		BaseURL: strings.TrimRight(cfg.Upload.PublicBaseURL, "/"),
	}, nil
}

func (l *LocalStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	target := filepath.Join(l.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return l.BaseURL + "/images/" + key, nil
}

// New picks the store configured by upload.driver.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Upload.Driver {
	case "s3":
		return NewS3(ctx, cfg)
	case "", "local":
		return NewLocal(cfg)
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.Upload.Driver)
	}
}
