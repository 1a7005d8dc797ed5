/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package reportstore archives comparison reports in Amazon S3 as gzip
 * compressed JSON objects, keyed by report name under a fixed prefix.
 */
package reportstore

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const pathPrefix = "reports"

// ErrNotFound indicates the named report does not exist in the bucket.
var ErrNotFound = errors.New("report not found")

// Store persists reports in an S3 bucket.
type Store struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the store uses. By default this is
	// initialized in Init() with the default Config, but callers can
	// optionally override this with their own s3 client if desired.
	Client *s3.Client

	bucketName string
	log        *zap.Logger
}

// Entry describes one archived report.
type Entry struct {
	Name         string
	Size         int64
	LastModified time.Time
}

// New returns a Store backed by the given bucket. Callers should take care
// to invoke Init() on the returned Store before use. A nil logger disables
// logging.
func New(bucketName string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{bucketName: bucketName, log: log}
}

// Init loads AWS configuration and verifies the bucket is reachable. The
// default configuration sources are:
// * Environment Variables (e.g. AWS_ACCESS_KEY_ID and AWS_SECRET_KEY)
// * Shared Configuration and Shared Credentials files.
// To use different credentials, modify the returned Store's Config and
// Client fields.
func (s *Store) Init(ctx context.Context) error {
	var err error
	s.Config, err = config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("reportstore.init: failed to load AWS config: %w",
			err)
	}
	s.Client = s3.NewFromConfig(s.Config)

	if _, err = s.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	}); err != nil {
		return fmt.Errorf("reportstore.init: head bucket failed for %s: %w",
			s.bucketName, err)
	}

	return nil
}

func objectKey(name string) string {
	return fmt.Sprintf("%v/%v.json.gz", pathPrefix, name)
}

// Put archives a report under the given name, overwriting any prior report
// with the same name.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return fmt.Errorf("reportstore.put: failed to gzip %v: %w", name, err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("reportstore.put: failed to gzip %v: %w", name, err)
	}

	key := objectKey(name)
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:          aws.String(s.bucketName),
		Key:             aws.String(key),
		Body:            &buf,
		ContentEncoding: aws.String("gzip"),
	})
	if err != nil {
		return fmt.Errorf("reportstore.put: put failed for %v/%v: %w",
			s.bucketName, key, err)
	}
	s.log.Debug("archived report", zap.String("bucket", s.bucketName),
		zap.String("key", key), zap.Int("bytes", len(data)))

	return nil
}

// Get retrieves a previously archived report.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	key := objectKey(name)
	resp, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, fmt.Errorf("report %v: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reportstore.get: failed to get %v/%v: %w",
			s.bucketName, key, err)
	}
	defer resp.Body.Close()

	gr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(
			"reportstore.get: failed to open compressed report %v: %w", name,
			err)
	}
	defer gr.Close()

	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("reportstore.get: failed to read %v: %w", name,
			err)
	}

	return data, nil
}

// Delete removes an archived report. Deleting a missing report is not an
// error.
func (s *Store) Delete(ctx context.Context, name string) error {
	key := objectKey(name)
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("reportstore.delete: delete failed for %v/%v: %w",
			s.bucketName, key, err)
	}
	return nil
}

// List returns all archived reports, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry

	paginator := s3.NewListObjectsV2Paginator(s.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketName),
		Prefix: aws.String(pathPrefix + "/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("reportstore.list: list failed for %v: %w",
				s.bucketName, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := key
			name = name[len(pathPrefix)+1:]
			if n := len(name); n > len(".json.gz") {
				name = name[:n-len(".json.gz")]
			}
			entries = append(entries, Entry{
				Name:         name,
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastModified.After(entries[j].LastModified)
	})

	return entries, nil
}
