package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"petro-catalog/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Source implements Source by reading a catalogue JSON object from AWS S3.
type s3Source struct {
	client *s3.Client
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Source creates a new S3-backed catalogue source.
func NewS3Source(ctx context.Context, bucket, region, key string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("source", "s3").Logger()

	// Load AWS configuration
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("key", key).
		Str("region", region).
		Msg("S3 catalog source initialised")

	return &s3Source{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}, nil
}

func (s *s3Source) read(ctx context.Context) (*Snapshot, error) {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Msg("loading catalog from S3")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to get catalog object from S3")
		return nil, fmt.Errorf("failed to get catalog object from S3 (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	var snap Snapshot
	if err := json.NewDecoder(result.Body).Decode(&snap); err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to decode catalog object")
		return nil, fmt.Errorf("failed to decode catalog object %s: %w", s.key, err)
	}

	s.logger.Info().
		Int("categories", len(snap.Categories)).
		Int("subcategories", len(snap.Subcategories)).
		Int("products", len(snap.Products)).
		Msg("catalog loaded from S3")

	return &snap, nil
}

// Categories returns all categories in object order.
func (s *s3Source) Categories(ctx context.Context) ([]model.Category, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Categories, nil
}

// Subcategories returns all subcategories in object order.
func (s *s3Source) Subcategories(ctx context.Context) ([]model.Subcategory, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Subcategories, nil
}

// Products returns all products in object order.
func (s *s3Source) Products(ctx context.Context) ([]model.Product, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Products, nil
}

// Product returns a single product by id, or (nil, nil) when absent.
func (s *s3Source) Product(ctx context.Context, id string) (*model.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}
