package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"gymhub/config"
	"gymhub/infras/otel"
	"gymhub/shared/constant"
)

const (
	otelAttrObjectKey = "s3.object_key"
	otelAttrBucket    = "s3.bucket"
	otelAttrSize      = "s3.size"
)

// Object is a file to store under Prefix/Name in Bucket.
type Object struct {
	Bucket      string
	Prefix      string
	Name        string
	ContentType string
	Body        []byte
}

// Key is the object key the file is stored under.
func (o Object) Key() string {
	return path.Join(o.Prefix, path.Base(o.Name))
}

type S3 interface {
	Put(ctx context.Context, object Object) (key string, err error)
}

type s3Impl struct {
	client *s3.Client
	otel   otel.Otel
}

// Put uploads object as a downloadable attachment that keeps its file name.
func (svc *s3Impl) Put(ctx context.Context, object Object) (key string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key = object.Key()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    object.Bucket,
		otelAttrSize:      len(object.Body),
	})

	body := bytes.NewReader(object.Body)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(object.Bucket),
		Key:                aws.String(key),
		Body:               body,
		ContentType:        aws.String(object.ContentType),
		ContentLength:      aws.Int64(body.Size()),
		ContentDisposition: aws.String(mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(object.Name)})),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to put %s into bucket %s: %w", key, object.Bucket, err)
	}

	return key, nil
}

// New builds a client for any S3-compatible store. A custom endpoint switches
// to path-style addressing.
func New(cfg *config.Config, otel otel.Otel) S3 {
	s3Cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, "")),
		awsConfig.WithRegion(s3Cfg.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Impl{
		client: client,
		otel:   otel,
	}
}
