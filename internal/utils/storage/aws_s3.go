package storage

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const BackupFolder = "backups"

const (
	ProductsBackup = "products.json"
	RecipesBackup  = "recipes.json"
	PlanBackup     = "plan.json"
)

type (
	// AwsS3 stores JSON backups in a single bucket under BackupFolder.
	AwsS3 interface {
		PutJSON(ctx context.Context, name string, v any) (string, error)
		GetJSON(ctx context.Context, name string, v any) error
		GetPublicLinkKey(objectKey string) string
	}

	objectAPI interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	}

	awsS3 struct {
		client objectAPI
		bucket string
		region string
	}
)

func NewAwsS3() (AwsS3, error) {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}, nil
}

func objectKey(name string) string {
	return path.Join(BackupFolder, name)
}

func (a *awsS3) PutJSON(ctx context.Context, name string, v any) (string, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	key := objectKey(name)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

func (a *awsS3) GetJSON(ctx context.Context, name string, v any) error {
	key := objectKey(name)
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return domain.ErrBackupNotFound
		}
		return fmt.Errorf("get %s: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}
