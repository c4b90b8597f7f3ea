package backup

//go:generate go run go.uber.org/mock/mockgen -source=./backup.go -destination=../mocks/backup_mock.go -package=mocks -mock_names=Writer=MockBackupWriter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"gymhub/config"
	"gymhub/infras/otel"
	"gymhub/infras/s3"
	"gymhub/shared/constant"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
)

// Writer keeps a copy of every export. Failures are logged, never returned.
type Writer interface {
	Save(ctx context.Context, filename string, body []byte)
}

type writerImpl struct {
	directory string
	bucket    string
	s3        s3.S3
	otel      otel.Otel
}

func New(cfg *config.Config, s3 s3.S3, otel otel.Otel) Writer {
	return &writerImpl{
		directory: cfg.Export.BackupDirectory,
		bucket:    cfg.Export.S3Bucket,
		s3:        s3,
		otel:      otel,
	}
}

func (b *writerImpl) Save(ctx context.Context, filename string, body []byte) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExportScopeName, constant.OtelExportScopeName+".backup.Save")
	defer scope.End()

	if err := b.saveToDisk(filename, body); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("filename", filename).Msg("failed to write export backup to disk")
	}

	if b.bucket == constant.Empty || b.s3 == nil {
		return
	}

	object := s3.Object{
		Bucket:      b.bucket,
		Prefix:      b.directory,
		Name:        filename,
		ContentType: constant.ContentTypeXML,
		Body:        body,
	}

	if _, err := b.s3.Put(ctx, object); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("filename", filename).Str("bucket", b.bucket).Msg("failed to mirror export backup to S3")
	}
}

func (b *writerImpl) saveToDisk(filename string, body []byte) error {
	if b.directory == constant.Empty {
		return nil
	}

	if err := os.MkdirAll(b.directory, dirPermission); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(b.directory, filepath.Base(filename)), body, filePermission); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	return nil
}
