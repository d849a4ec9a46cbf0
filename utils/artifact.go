package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArtifactStore resolves model/dataset artifact identifiers. Local paths
// pass through untouched; s3://bucket/key URIs are downloaded to a temp file
// that the returned cleanup removes.
type ArtifactStore struct {
	client *s3.Client
}

func NewArtifactStore(ctx context.Context, region string) (*ArtifactStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &ArtifactStore{client: s3.NewFromConfig(cfg)}, nil
}

// Fetch returns a local path for the artifact. cleanup is never nil.
func (a *ArtifactStore) Fetch(ctx context.Context, uri string) (localPath string, cleanup func(), err error) {
	if !strings.HasPrefix(uri, "s3://") {
		return uri, func() {}, nil
	}
	if a == nil || a.client == nil {
		return "", nil, fmt.Errorf("s3 artifact %q requested but no artifact store configured", uri)
	}

	bucket, key, err := splitS3URI(uri)
	if err != nil {
		return "", nil, err
	}

	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", nil, fmt.Errorf("download %s: %w", uri, err)
	}
	defer out.Body.Close()

	tmp, err := os.CreateTemp("", "artifact-*"+path.Ext(key))
	if err != nil {
		return "", nil, fmt.Errorf("stage %s: %w", uri, err)
	}
	if _, err := io.Copy(tmp, out.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("stage %s: %w", uri, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("stage %s: %w", uri, err)
	}

	name := tmp.Name()
	return name, func() { os.Remove(name) }, nil
}

func splitS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid s3 uri %q", uri)
	}
	return parts[0], parts[1], nil
}
