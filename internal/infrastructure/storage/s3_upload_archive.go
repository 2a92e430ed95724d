package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"servicescale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// S3UploadArchive keeps confirmed import files in a bucket under
// <prefix>/<owner>/<batch>/<file name>.
type S3UploadArchive struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ interfaces.IUploadArchive = (*S3UploadArchive)(nil)

func NewS3UploadArchive(client *s3.Client, bucket, prefix string) *S3UploadArchive {
	return &S3UploadArchive{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (a *S3UploadArchive) Put(ctx context.Context, ownerID, batchID, fileName string, content []byte) (string, error) {
	key := ObjectKey(a.prefix, ownerID, batchID, fileName)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive upload to key %s: %w", key, err)
	}
	return key, nil
}

func (a *S3UploadArchive) Delete(ctx context.Context, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete archived upload %s: %w", key, err)
	}
	return nil
}

// ObjectKey builds the archive key, replacing anything that could escape the
// owner's folder.
func ObjectKey(prefix, ownerID, batchID, fileName string) string {
	clean := func(s, fallback string) string {
		s = strings.Trim(unsafeKeyChars.ReplaceAllString(s, "_"), "._")
		if s == "" {
			return fallback
		}
		return s
	}
	return path.Join(prefix, clean(ownerID, "unknown"), clean(batchID, "batch"), clean(fileName, "upload.csv"))
}
