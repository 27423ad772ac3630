package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

const pngContentType = "image/png"

// Publisher mirrors a generated asset tree to an S3 bucket.
type Publisher struct {
	uploader s3manageriface.UploaderAPI
	bucket   string
	prefix   string
	log      *StdLog
}

func NewS3Publisher(bucket, region, prefix string, stdLog *StdLog) (*Publisher, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return NewPublisher(s3manager.NewUploader(sess), bucket, prefix, stdLog), nil
}

func NewPublisher(uploader s3manageriface.UploaderAPI, bucket, prefix string, stdLog *StdLog) *Publisher {
	return &Publisher{
		uploader: uploader,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		log:      stdLog,
	}
}

// Publish uploads every PNG under dir in lexical order and returns the object keys.
// It stops at the first failed upload.
func (p *Publisher) Publish(ctx context.Context, dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") || !strings.EqualFold(filepath.Ext(path), ".png") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish error: %w", err)
	}

	keys := make([]string, 0, len(files))
	for _, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return keys, fmt.Errorf("publish error: %w", err)
		}
		key := path.Join(p.prefix, filepath.ToSlash(rel))
		if err := p.upload(ctx, file, key); err != nil {
			return keys, fmt.Errorf("publish error: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (p *Publisher) upload(ctx context.Context, filename, key string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %q, %w", filename, err)
	}
	defer file.Close()

	_, err = p.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(pngContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file %s, %w", key, err)
	}

	p.log.Info("Put file to S3 s3://%s/%s", p.bucket, key)
	return nil
}
