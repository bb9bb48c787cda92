package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpacesScheme prefixes set locations stored in the Spaces bucket.
const SpacesScheme = "spaces://"

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// SpacesService reads set documents from a DigitalOcean Spaces bucket.
type SpacesService struct {
	client objectGetter
	bucket string
	Root   string
}

func NewSpacesService(ctx context.Context, spacesKey, spacesSecret, region, bucket, root string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load spaces config: %w", err)
	}

	return &SpacesService{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		Root:   strings.Trim(root, "/"),
	}, nil
}

// ObjectKey resolves a spaces:// location to its key in the bucket.
func (s *SpacesService) ObjectKey(location string) string {
	key := strings.TrimPrefix(strings.TrimPrefix(location, SpacesScheme), "/")
	if s.Root == "" {
		return key
	}
	return path.Join(s.Root, key)
}

func (s *SpacesService) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	key := s.ObjectKey(location)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from bucket %s: %w", key, s.bucket, err)
	}
	return out.Body, nil
}
