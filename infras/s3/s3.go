package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	"hostel/shared/constant"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

type S3 interface {
	UploadBytes(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
	DeleteObject(ctx context.Context, objectKey string) error
	ObjectKeyFromURL(url string) string
}

type s3Impl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	apiEndpoint  string
	otel         otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) S3 {
	storage := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			storage.AccessKeyID,
			storage.SecretAccessKey,
			"",
		)),
		awsConfig.WithRegion(storage.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if storage.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(storage.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:       client,
		bucket:       storage.BucketName,
		publicDomain: strings.TrimSuffix(storage.PublicDomain, "/"),
		apiEndpoint:  strings.TrimSuffix(storage.APIEndpoint, "/"),
		otel:         otl,
	}
}

// UploadBytes stores data under directory/fileName and returns its public URL.
func (svc *s3Impl) UploadBytes(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadBytes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return svc.publicDomain + "/" + objectKey, nil
}

func (svc *s3Impl) DeleteObject(ctx context.Context, objectKey string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}

// ObjectKeyFromURL reverses UploadBytes. It accepts both public and path-style API URLs.
func (svc *s3Impl) ObjectKeyFromURL(url string) string {
	for _, prefix := range []string{
		svc.publicDomain + "/",
		fmt.Sprintf("%s/%s/", svc.apiEndpoint, svc.bucket),
	} {
		if key, ok := strings.CutPrefix(url, prefix); ok && prefix != "/" {
			return key
		}
	}

	return constant.Empty
}
