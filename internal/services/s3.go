package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"duesseldorf-family-adventures/internal/catalog"
	"duesseldorf-family-adventures/internal/models"
)

const (
	defaultArtifactsBucket = "duesseldorf-family-adventures-data"
	catalogOverrideKey     = "catalog/adventures.json"
	artifactsPrefix        = "daily"
)

// ArtifactStore handles S3 operations: publishing daily artifacts and
// loading the optional catalog override.
type ArtifactStore struct {
	client *s3.Client
	bucket string
}

// UploadResult describes a completed artifact upload.
type UploadResult struct {
	Key        string    `json:"key"`
	ETag       string    `json:"etag"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// NewArtifactStore creates a store using the default AWS configuration.
// The bucket name comes from S3_BUCKET_NAME when set.
func NewArtifactStore(ctx context.Context) (*ArtifactStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		bucket = defaultArtifactsBucket
	}

	return &ArtifactStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// NewArtifactStoreWithClient creates a store around an existing client.
func NewArtifactStoreWithClient(client *s3.Client, bucket string) *ArtifactStore {
	return &ArtifactStore{client: client, bucket: bucket}
}

// PublishDailyArtifact uploads the JSON artifact for a day under the
// daily/ prefix and returns the upload result for the dated key.
func (a *ArtifactStore) PublishDailyArtifact(ctx context.Context, day time.Time, jsonData []byte) (*UploadResult, error) {
	return a.publishDated(ctx, day, "json", jsonData, "application/json")
}

// PublishDailyMarkdown uploads the rendered markdown alongside the JSON
// artifact.
func (a *ArtifactStore) PublishDailyMarkdown(ctx context.Context, day time.Time, markdown string) (*UploadResult, error) {
	return a.publishDated(ctx, day, "md", []byte(markdown), "text/markdown")
}

// PublishDailyICS uploads the calendar event for the day.
func (a *ArtifactStore) PublishDailyICS(ctx context.Context, day time.Time, ics []byte) (*UploadResult, error) {
	return a.publishDated(ctx, day, "ics", ics, "text/calendar")
}

// publishDated writes the dated key plus a latest alias so consumers can
// fetch the current day without knowing the date.
func (a *ArtifactStore) publishDated(ctx context.Context, day time.Time, ext string, data []byte, contentType string) (*UploadResult, error) {
	dated := fmt.Sprintf("%s/%s.%s", artifactsPrefix, day.Format("2006-01-02"), ext)
	result, err := a.upload(ctx, dated, data, contentType)
	if err != nil {
		return nil, err
	}
	latest := fmt.Sprintf("%s/latest.%s", artifactsPrefix, ext)
	if _, err := a.upload(ctx, latest, data, contentType); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *ArtifactStore) upload(ctx context.Context, key string, data []byte, contentType string) (*UploadResult, error) {
	result, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	etag := ""
	if result.ETag != nil {
		etag = *result.ETag
	}
	log.Printf("[S3] Uploaded %s (%d bytes)", key, len(data))
	return &UploadResult{
		Key:        key,
		ETag:       etag,
		Size:       int64(len(data)),
		UploadedAt: time.Now().UTC(),
	}, nil
}

// LoadCatalog returns the S3 catalog override when present, otherwise
// the built-in catalog. A broken override is an error rather than a
// silent fallback so bad documents get noticed.
func (a *ArtifactStore) LoadCatalog(ctx context.Context) ([]models.MicroAdventure, error) {
	result, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(catalogOverrideKey),
	})
	if err != nil {
		log.Printf("[S3] No catalog override (%v), using built-in catalog", err)
		return catalog.Load()
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog override: %w", err)
	}

	adventures, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog override is invalid: %w", err)
	}
	log.Printf("[S3] Loaded catalog override with %d adventures", len(adventures))
	return adventures, nil
}
