// Package audit keeps an append-only record of raffle draws in S3-compatible object storage.
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/logger"
)

// Config selects the bucket and, for R2/MinIO style stores, the endpoint and static keys
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// DrawRecord is the document written for every completed draw
type DrawRecord struct {
	Raffle       domain.Raffle              `json:"raffle"`
	Participants []domain.RaffleParticipant `json:"participants"`
	Result       domain.DrawResult          `json:"result"`
	RecordedAt   time.Time                  `json:"recorded_at"`
}

// S3Auditor writes draw records as JSON objects
type S3Auditor struct {
	client objectPutter
	bucket string
	now    func() time.Time
}

// NewS3Auditor builds an auditor from the default AWS credential chain,
// overridden by static keys when both are set.
func NewS3Auditor(ctx context.Context, cfg Config) (*S3Auditor, error) {
	if cfg.Bucket == "" {
		return nil, errors.New(ErrMsgMissingBucket)
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadConfig, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info(LogMsgAuditorReady, "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)
	return newAuditor(client, cfg.Bucket), nil
}

func newAuditor(client objectPutter, bucket string) *S3Auditor {
	return &S3Auditor{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
}

// ObjectKey returns the key a draw is stored under: raffles/YYYY/MM/<raffle id>.json
func ObjectKey(result *domain.DrawResult) string {
	return fmt.Sprintf("%s/%s/%s.json", KeyPrefix, result.DrawnAt.UTC().Format(KeyDateLayout), result.RaffleID)
}

// RecordDraw stores the raffle, its full participant list and the outcome
func (a *S3Auditor) RecordDraw(ctx context.Context, raffle *domain.Raffle, participants []domain.RaffleParticipant, result *domain.DrawResult) error {
	record := DrawRecord{
		Raffle:       *raffle,
		Participants: participants,
		Result:       *result,
		RecordedAt:   a.now().UTC(),
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeRecord, err)
	}

	key := ObjectKey(result)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(ContentTypeJSON),
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgPutObject, key, err)
	}

	logger.FromContext(ctx).Info(LogMsgDrawRecorded, "raffle_id", result.RaffleID, "key", key)
	return nil
}
