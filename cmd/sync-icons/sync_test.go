package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/go-cmp/cmp"
)

type fakeS3 struct {
	objects map[string]string
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	if got := aws.ToString(params.ContentType); got != "image/png" {
		return nil, errors.New("unexpected content type " + got)
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func writeIcon(t *testing.T, dir, icon string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, icon+".png"), []byte("png:"+icon), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSyncIcons(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "clear-day")
	writeIcon(t, dir, "rain")
	writeIcon(t, dir, "not-an-icon")

	client := &fakeS3{objects: map[string]string{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := syncIcons(context.Background(), client, "skill-icons", dir, logger); err != nil {
		t.Fatalf("syncIcons() unexpected error = %v", err)
	}

	want := map[string]string{
		"skill-icons/images/clear-day.png": "png:clear-day",
		"skill-icons/images/rain.png":      "png:rain",
	}
	if diff := cmp.Diff(want, client.objects); diff != "" {
		t.Errorf("uploaded objects mismatch (-want +got):\n%s", diff)
	}
}

func TestSyncIcons_UploadError(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "snow")

	client := &fakeS3{err: errors.New("access denied")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := syncIcons(context.Background(), client, "skill-icons", dir, logger)
	if err == nil {
		t.Fatal("syncIcons() expected error but got none")
	}
	if !errors.Is(err, client.err) {
		t.Errorf("syncIcons() error = %v, want wrapped %v", err, client.err)
	}
}
