package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/pflag"
)

func main() {
	dir := pflag.StringP("dir", "d", "images", "directory holding <icon>.png files")
	bucket := pflag.StringP("bucket", "b", os.Getenv("S3_BUCKET"), "destination S3 bucket")
	region := pflag.String("region", envOr("AWS_REGION", "us-east-1"), "AWS region")
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *bucket == "" {
		log.Fatal("a bucket is required (--bucket or S3_BUCKET)")
	}

	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(*region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	if err := syncIcons(ctx, s3.NewFromConfig(cfg), *bucket, *dir, logger); err != nil {
		logger.Error("icon sync failed", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
