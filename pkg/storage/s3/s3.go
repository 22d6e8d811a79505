package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"skillsphere/pkg/config"
	"skillsphere/pkg/storage"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

type Store struct {
	s3Client *s3.S3
	bucket   string
}

var _ storage.ObjectStore = (*Store)(nil)

func NewStore(cfg *config.Config) (*Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	store := &Store{
		s3Client: s3.New(sess),
		bucket:   cfg.S3BucketName,
	}

	// Ensure bucket exists (for MinIO)
	_, err = store.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		_, _ = store.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		})
	}

	return store, nil
}

// Put stores the blob under a freshly generated id so an existing object is
// never overwritten. The media class and original filename travel as object
// metadata for later audits.
func (s *Store) Put(ctx context.Context, data []byte, originalName, contentType string, class storage.MediaClass) (string, error) {
	id := uuid.New().String()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	metadata := map[string]*string{
		"type": aws.String(string(class)),
	}
	if originalName != "" {
		metadata["original-name"] = aws.String(originalName)
	}

	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(id)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata:    metadata,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (io.ReadCloser, string, error) {
	out, err := s.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(id)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, "", storage.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to get object from S3: %w", err)
	}

	return out.Body, aws.StringValue(out.ContentType), nil
}

// Delete removes the blob. S3 deletes are silent on missing keys, so the
// object is checked first to surface storage.ErrNotFound for the caller to log.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.s3Client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(id)),
	})
	if err != nil {
		if isNotFound(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to stat object in S3: %w", err)
	}

	_, err = s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(id)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}
	return nil
}

func (s *Store) objectKey(id string) string {
	return "media/" + id
}

func isNotFound(err error) bool {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		code := aerr.Code()
		return code == s3.ErrCodeNoSuchKey || code == "NotFound"
	}
	return false
}
