package minio

import (
	"context"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/talentbuzz/marketplace-go/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

func UploadObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	_, err := Client.PutObject(ctx, BucketName, objectName, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (*url.URL, error) {
	return Client.PresignedGetObject(ctx, BucketName, objectName, expiry, nil)
}

func DeleteObject(ctx context.Context, objectName string) error {
	return Client.RemoveObject(ctx, BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
