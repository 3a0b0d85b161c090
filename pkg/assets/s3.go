package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner is the part of the S3 presign client S3Resolver needs.
// *s3.PresignClient satisfies it.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Resolver resolves keys to presigned GET URLs on a private bucket.
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	client := s3.NewFromConfig(cfg)
//	resolver := assets.NewS3Resolver(s3.NewPresignClient(client), "my-bucket")
type S3Resolver struct {
	presigner Presigner
	bucket    string
	prefix    string
	urlExpiry time.Duration
}

// NewS3Resolver creates a Resolver backed by S3 presigned URLs.
// URLs are valid for 15 minutes by default.
func NewS3Resolver(presigner Presigner, bucket string) *S3Resolver {
	return &S3Resolver{
		presigner: presigner,
		bucket:    bucket,
		urlExpiry: 15 * time.Minute,
	}
}

// WithPrefix prepends a key prefix (e.g. "avatars/") to every lookup.
func (r *S3Resolver) WithPrefix(prefix string) *S3Resolver {
	r.prefix = prefix
	return r
}

// WithURLExpiry sets how long presigned URLs stay valid.
func (r *S3Resolver) WithURLExpiry(d time.Duration) *S3Resolver {
	r.urlExpiry = d
	return r
}

// URL implements Resolver.
func (r *S3Resolver) URL(ctx context.Context, key string) (string, error) {
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.prefix + key),
	}, s3.WithPresignExpires(r.urlExpiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}
