// Package s3 archives frozen copies of submitted returns to object
// storage. The archive is write-once evidence of what was filed; the
// database row remains the serving copy.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"gstbook/internal/config"
	"gstbook/internal/domain"
	"gstbook/internal/port"
)

type archiver struct {
	uploader *manager.Uploader
	bucket   string
}

// NewArchiver creates a new S3-backed ReturnArchiver.
func NewArchiver(cfg *config.S3Config) (port.ReturnArchiver, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &archiver{
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
	}, nil
}

func (a *archiver) ArchiveSubmission(ctx context.Context, doc *domain.ReturnDocument) (string, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("s3 archive marshal: %w", err)
	}

	key := ArchiveKey(doc)
	result, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 archive upload: %w", err)
	}
	return result.Location, nil
}

// ArchiveKey builds the object key for a submitted return.
func ArchiveKey(doc *domain.ReturnDocument) string {
	return fmt.Sprintf("returns/%s/%s/%s.json", doc.BasicInfo.GSTIN, doc.Period.Key(), doc.BasicInfo.ARN)
}
