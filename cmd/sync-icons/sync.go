package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"weather-skill/internal/weather"
)

// putObjectAPI is the slice of the S3 client used for uploads
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// syncIcons uploads <dir>/<icon>.png for every known icon to the key the card images point at.
// Missing files are skipped; the first upload failure stops the sync.
func syncIcons(ctx context.Context, client putObjectAPI, bucket, dir string, logger *slog.Logger) error {
	uploaded := 0
	for _, icon := range weather.Icons {
		path := filepath.Join(dir, icon+".png")
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("icon image missing, skipping", "icon", icon, "path", path)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}

		key := weather.IconKey(icon)
		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String("image/png"),
		})
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}

		logger.Info("uploaded icon", "bucket", bucket, "key", key)
		uploaded++
	}

	logger.Info("icon sync complete", "uploaded", uploaded, "known", len(weather.Icons))
	return nil
}
