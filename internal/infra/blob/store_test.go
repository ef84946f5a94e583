package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vimco/vimco-api/internal/config"
)

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(&config.Config{Upload: config.UploadCfg{
		Dir:           dir,
		PublicBaseURL: "https://api.vimco.in/",
	}})
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "uploads/2026/01/02/abc.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.vimco.in/images/uploads/2026/01/02/abc.png", url)

	raw, err := os.ReadFile(filepath.Join(dir, "uploads", "2026", "01", "02", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(raw))
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store := &LocalStore{Dir: t.TempDir()}
	_, err := store.Put(context.Background(), "../escape.txt", "text/plain", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), &config.Config{Upload: config.UploadCfg{Driver: "ftp"}})
	assert.Error(t, err)
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), &config.Config{})
	assert.Error(t, err)
}

func TestPublicBase(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.S3Cfg
		want    string
		wantErr bool
	}{
		{
			name: "configured base wins",
			cfg:  config.S3Cfg{Bucket: "media", Region: "auto", Endpoint: "r2.example.com", PublicBaseURL: "https://cdn.vimco.in/"},
			want: "https://cdn.vimco.in",
		},
		{
			name: "path style endpoint",
			cfg:  config.S3Cfg{Bucket: "media", Region: "auto", Endpoint: "http://minio:9000", UsePathStyle: true},
			want: "http://minio:9000/media",
		},
		{
			name: "virtual host endpoint",
			cfg:  config.S3Cfg{Bucket: "media", Region: "auto", Endpoint: "sgp1.digitaloceanspaces.com"},
			want: "https://media.sgp1.digitaloceanspaces.com",
		},
		{
			name: "aws region",
			cfg:  config.S3Cfg{Bucket: "media", Region: "ap-south-1"},
			want: "https://media.s3.ap-south-1.amazonaws.com",
		},
		{
			name:    "no way to build a permanent url",
			cfg:     config.S3Cfg{Bucket: "media", Region: "auto"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := publicBase(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "X-Amz-")
		})
	}
}

func TestNewS3_RefusesExpiringURLs(t *testing.T) {
	_, err := NewS3(context.Background(), &config.Config{S3: config.S3Cfg{Bucket: "media", Region: "auto"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3.publicBaseURL")
}
