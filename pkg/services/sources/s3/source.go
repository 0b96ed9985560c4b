package s3

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
)

const (
	DefaultRegion = "us-east-1" // Fallback region when neither profile nor environment set one
)

type source struct {
	name   string
	bucket string
	key    string
	comma  rune
	client *s3.Client
}

// Factory creates an object-store source from a profile.
// Keys: bucket, key (both required), region, aws_profile, delimiter (optional).
func Factory(ctx context.Context, profile config.Profile) (sources.Source, error) {
	bucket := profile.Key("bucket")
	key := profile.Key("key")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("profile %q needs bucket and key", profile.Name)
	}

	comma, err := sources.Delimiter(profile)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &source{
		name:   profile.Name,
		bucket: bucket,
		key:    key,
		comma:  comma,
		client: s3.NewFromConfig(*cfg),
	}, nil
}

// LoadConfig resolves the AWS SDK config for a profile. Credentials come from
// the shared config chain; the profile may pin an aws_profile and a region.
func LoadConfig(ctx context.Context, profile config.Profile) (*awssdk.Config, error) {
	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithDefaultRegion(DefaultRegion),
	}
	if p := profile.Key("aws_profile"); p != "" {
		opts = append(opts, awscfg.WithSharedConfigProfile(p))
	}
	if region := profile.Key("region"); region != "" {
		opts = append(opts, awscfg.WithRegion(region))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &awsCfg, nil
}

func (s *source) Name() string { return s.name }

func (s *source) Fetch(ctx context.Context) (*store.RawTable, error) {
	obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awssdk.String(s.bucket),
		Key:    awssdk.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer obj.Body.Close()

	table, err := sources.ReadCSV(obj.Body, s.comma)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return table, nil
}
