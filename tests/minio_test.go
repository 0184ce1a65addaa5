package tests

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/talentbuzz/marketplace-go/config"
	"github.com/talentbuzz/marketplace-go/minio"

	minioSDK "github.com/minio/minio-go/v7"
)

func TestMain(m *testing.M) {
	if os.Getenv("MINIO_ENDPOINT") == "" {
		fmt.Println("skipping minio tests: MINIO_ENDPOINT not set")
		return
	}
	config.LoadConfig()
	minio.InitMinio()
	os.Exit(m.Run())
}

func TestUploadDownloadDocument(t *testing.T) {
	ctx := context.Background()
	start := time.Now()

	testObject := "documents/test-report.txt"
	testContent := "hours worked: 8\n"

	if err := minio.UploadObject(ctx, testObject, "text/plain", strings.NewReader(testContent), int64(len(testContent))); err != nil {
		t.Fatalf("UploadObject failed: %v", err)
	}

	obj, err := minio.Client.GetObject(ctx, minio.BucketName, testObject, minioSDK.GetObjectOptions{})
	if err != nil {
		t.Fatalf("GetObject failed: %v", err)
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(content) != testContent {
		t.Fatalf("Downloaded content mismatch.\nGot:\n%s\nWant:\n%s", content, testContent)
	}

	if err := minio.DeleteObject(ctx, testObject); err != nil {
		t.Fatalf("DeleteObject failed: %v", err)
	}

	elapsed := time.Since(start)
	t.Logf("TestUploadDownloadDocument took %s", elapsed)
}

func TestPresignedGetURL(t *testing.T) {
	ctx := context.Background()

	testObject := "documents/test-presign.txt"
	testContent := "presigned"
	if err := minio.UploadObject(ctx, testObject, "text/plain", strings.NewReader(testContent), int64(len(testContent))); err != nil {
		t.Fatalf("UploadObject failed: %v", err)
	}
	defer minio.DeleteObject(ctx, testObject)

	u, err := minio.PresignedGetURL(ctx, testObject, 15*time.Minute)
	if err != nil {
		t.Fatalf("PresignedGetURL failed: %v", err)
	}
	if u == nil || u.Host == "" {
		t.Fatalf("expected a resolvable URL, got %v", u)
	}
}
