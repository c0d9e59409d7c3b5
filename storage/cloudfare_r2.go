package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Dosada05/volei-torneio/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type CloudflareR2StoreConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	DocumentKey     string
	// Endpoint overrides the R2 endpoint derived from AccountID, e.g. for MinIO.
	Endpoint string
}

// R2DocumentStore keeps the document as one object. The object ETag is the
// version; writes are conditional on it (If-Match / If-None-Match).
type R2DocumentStore struct {
	s3Client    *s3.Client
	bucketName  string
	documentKey string
}

func NewCloudflareR2DocumentStore(ctx context.Context, cfg CloudflareR2StoreConfig) (*R2DocumentStore, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.BucketName == "" || cfg.DocumentKey == "" {
		return nil, errors.New("invalid Cloudflare R2 configuration: access key, secret, bucket and document key are required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.AccountID == "" {
			return nil, errors.New("invalid Cloudflare R2 configuration: account id or endpoint is required")
		}
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	sdkCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		config.WithRegion("auto"), // R2 signs with the "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for R2: %w", err)
	}

	s3Client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2DocumentStore{
		s3Client:    s3Client,
		bucketName:  cfg.BucketName,
		documentKey: cfg.DocumentKey,
	}, nil
}

func (s *R2DocumentStore) Load(ctx context.Context) (*models.Database, Version, error) {
	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.documentKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return models.NewDatabase(), "", nil
		}
		return nil, "", fmt.Errorf("failed to get document from R2 (key: %s): %w", s.documentKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document body from R2 (key: %s): %w", s.documentKey, err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, "", err
	}
	return doc, etagVersion(out.ETag), nil
}

func (s *R2DocumentStore) Save(ctx context.Context, doc *models.Database, expected Version) (Version, error) {
	data, err := EncodeDocument(doc)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(s.documentKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	}
	if expected == "" {
		input.IfNoneMatch = aws.String("*")
	} else {
		input.IfMatch = aws.String(`"` + string(expected) + `"`)
	}

	result, err := s.s3Client.PutObject(ctx, input)
	if err != nil {
		if isPreconditionFailure(err) {
			return "", ErrVersionConflict
		}
		return "", fmt.Errorf("failed to put document to R2 (key: %s): %w", s.documentKey, err)
	}
	return etagVersion(result.ETag), nil
}

func etagVersion(etag *string) Version {
	if etag == nil {
		return ""
	}
	// S3 совместимые API отдают ETag в двойных кавычках.
	return Version(strings.Trim(*etag, `"`))
}

func isPreconditionFailure(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ConditionalRequestConflict":
		return true
	}
	return false
}
