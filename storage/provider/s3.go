package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"

	"github.com/raako71/RClone-Diff/rclone"
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// S3Lister pages bucket listings through the AWS SDK directly, bypassing the
// external binary for S3-compatible remotes with configured credentials.
type S3Lister struct {
	Remote         string
	AccessKey      string
	SecretKey      string
	Token          string
	Region         string
	Endpoint       string
	ForcePathStyle bool
	s3Client       *s3.Client
}

func (c *S3Lister) getClient(ctx context.Context) (*s3.Client, error) {
	if c.s3Client != nil {
		return c.s3Client, nil
	}

	region := c.Region
	if region == "" {
		region = "eu-central-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, c.Token)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build S3 client: %w", err)
	}

	c.s3Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.ForcePathStyle
	})

	return c.s3Client, nil
}

// List pages every object below the location's prefix. The first path segment
// is the bucket, the remainder the key prefix, matching the addressing scheme
// of an S3 remote.
func (c *S3Lister) List(ctx context.Context, location fs.Location, opts fs.ListOptions) ([]fs.Entry, error) {
	bucket, prefix := splitBucket(location.Path)
	if bucket == "" {
		return nil, &rclone.ListingError{
			Location: location.String(),
			Err:      fmt.Errorf("no bucket in path %#q", location.Path),
		}
	}

	svc, err := c.getClient(ctx)
	if err != nil {
		return nil, &rclone.ListingError{Location: location.String(), Err: err}
	}

	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	// a delimiter stops the listing at the first level below the prefix
	if !opts.Recursive {
		input.Delimiter = aws.String("/")
	}

	var entries []fs.Entry
	paginator := s3.NewListObjectsV2Paginator(svc, input)

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &rclone.ListingError{
				Location: location.String(),
				Err:      fmt.Errorf("failed to get objects in bucket %#q: %w", bucket, err),
			}
		}

		log.Debugf("Retrieved %d items from bucket %#q", len(page.Contents), bucket)

		entries = appendPage(page, prefix, opts, entries)
	}

	return entries, nil
}

// appendPage converts one listing page: object keys become file entries
// (zero-byte keys ending in '/' are directory markers), common prefixes of a
// delimited listing become directory entries.
func appendPage(page *s3.ListObjectsV2Output, prefix string, opts fs.ListOptions, entries []fs.Entry) []fs.Entry {
	for _, cp := range page.CommonPrefixes {
		relPath := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), prefix), "/")
		if relPath == "" || Excluded(relPath, opts.Excludes) {
			continue
		}

		entries = append(entries, fs.Entry{
			Path:  relPath,
			Name:  baseName(relPath),
			IsDir: true,
		})
	}

	for _, obj := range page.Contents {
		relPath := strings.TrimPrefix(aws.ToString(obj.Key), prefix)

		// zero-byte directory markers end in '/'
		isDir := strings.HasSuffix(relPath, "/")
		relPath = strings.TrimSuffix(relPath, "/")
		if relPath == "" {
			continue
		}

		if Excluded(relPath, opts.Excludes) {
			continue
		}

		entry := fs.Entry{
			Path:  relPath,
			Name:  baseName(relPath),
			IsDir: isDir,
		}
		if obj.Size != nil && *obj.Size > 0 {
			entry.Size = uint64(*obj.Size)
		}
		if obj.LastModified != nil {
			entry.ModTime = *obj.LastModified
		}

		entries = append(entries, entry)
	}

	return entries
}

// splitBucket separates "bucket/prefix/" into the bucket name and a key
// prefix that keeps its trailing slash.
func splitBucket(p string) (bucket string, prefix string) {
	p = strings.TrimPrefix(p, "/")
	i := strings.Index(p, "/")
	if i < 0 {
		return p, ""
	}
	return p[:i], p[i+1:]
}

func baseName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
