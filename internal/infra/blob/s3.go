package blob

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/vimco/vimco-api/internal/config"
)

type S3Store struct {
	Client        *s3.Client
	Uploader      *manager.Uploader
	Bucket        string
	SSE           *s3types.ServerSideEncryption
	PublicBaseURL string
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	if cfg.S3.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}
	base, err := publicBase(cfg.S3)
	if err != nil {
		return nil, err
	}

	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Opts := func(o *s3.Options) {
		if ep := endpointURL(cfg.S3.Endpoint); ep != nil {
			o.BaseEndpoint = aws.String(ep.String())
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)

	var sse *s3types.ServerSideEncryption
	if cfg.S3.SSE != "" {
		v := s3types.ServerSideEncryption(cfg.S3.SSE)
		sse = &v
	}

	return &S3Store{
		Client:        client,
		Uploader:      manager.NewUploader(client),
		Bucket:        cfg.S3.Bucket,
		SSE:           sse,
		PublicBaseURL: base,
	}, nil
}

// Put uploads the object and returns its permanent public URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if s.SSE != nil {
		input.ServerSideEncryption = *s.SSE
	}

	if _, err := s.Uploader.Upload(ctx, input); err != nil {
		return "", err
	}
	return s.PublicBaseURL + "/" + key, nil
}

// publicBase is the URL prefix stored objects are served from. Uploaded URLs
// end up in content records, so they must not expire.
func publicBase(c config.S3Cfg) (string, error) {
	if base := strings.TrimRight(strings.TrimSpace(c.PublicBaseURL), "/"); base != "" {
		return base, nil
	}
	if ep := endpointURL(c.Endpoint); ep != nil {
		if c.UsePathStyle {
			return strings.TrimRight(ep.String(), "/") + "/" + c.Bucket, nil
		}
		return ep.Scheme + "://" + c.Bucket + "." + ep.Host, nil
	}
	if c.Region == "" || c.Region == "auto" {
		return "", errors.New("s3.publicBaseURL is required when the region does not name an AWS region")
	}
	return "https://" + c.Bucket + ".s3." + c.Region + ".amazonaws.com", nil
}

func endpointURL(raw string) *url.URL {
	ep := strings.TrimSpace(raw)
	if ep == "" {
		return nil
	}
	if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
		ep = "https://" + ep
	}
	u, err := url.Parse(ep)
	if err != nil || u.Host == "" {
		return nil
	}
	return u
}
