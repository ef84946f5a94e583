package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/vimco/vimco-api/internal/infra/blob"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const uploadConcurrency = 4

var (
	ErrNoFiles         = errors.New("no files uploaded")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedFile = errors.New("only image files are allowed")
)

var imageExt = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

type UploadService interface {
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

type UploadOptions struct {
	Prefix        string
	MaxFileBytes  int64
	MaxImageWidth int
}

type uploadService struct {
	store blob.Store
	opt   UploadOptions
	log   *zap.Logger
	now   func() time.Time
}

func NewUploadService(store blob.Store, opt UploadOptions, log *zap.Logger) UploadService {
	return &uploadService{store: store, opt: opt, log: log, now: time.Now}
}

// Upload stores every file and returns their URLs in request order.
// Content addressed keys make re-uploads of the same image idempotent.
func (s *uploadService) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	for _, fh := range files {
		if s.opt.MaxFileBytes > 0 && fh.Size > s.opt.MaxFileBytes {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
		}
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, fh := range files {
		g.Go(func() error {
			data, err := readAll(fh)
			if err != nil {
				return fmt.Errorf("read %s: %w", fh.Filename, err)
			}
			url, err := s.put(gctx, fh.Filename, data)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *uploadService) put(ctx context.Context, filename string, data []byte) (string, error) {
	contentType := sniff(filename, data)
	ext, ok := imageExt[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}

	data = s.downscale(filename, contentType, data)

	sum := sha256.Sum256(data)
	key := path.Join(s.opt.Prefix, s.now().UTC().Format("2006/01/02"), hex.EncodeToString(sum[:])+ext)

	url, err := s.store.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("store %s: %w", filename, err)
	}
	s.log.Info("file uploaded", zap.String("file", filename), zap.String("key", key), zap.Int("bytes", len(data)))
	return url, nil
}

// downscale shrinks raster images wider than MaxImageWidth. Formats the
// imaging package cannot decode are stored untouched.
func (s *uploadService) downscale(filename, contentType string, data []byte) []byte {
	if s.opt.MaxImageWidth <= 0 {
		return data
	}
	format, err := imaging.FormatFromExtension(strings.TrimPrefix(imageExt[contentType], "."))
	if err != nil {
		return data
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		s.log.Warn("decode image", zap.String("file", filename), zap.Error(err))
		return data
	}
	if img.Bounds().Dx() <= s.opt.MaxImageWidth {
		return data
	}

	resized := imaging.Resize(img, s.opt.MaxImageWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		s.log.Warn("encode image", zap.String("file", filename), zap.Error(err))
		return data
	}
	return buf.Bytes()
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func sniff(filename string, data []byte) string {
	if strings.EqualFold(path.Ext(filename), ".svg") {
		return "image/svg+xml"
	}
	return http.DetectContentType(data)
}
