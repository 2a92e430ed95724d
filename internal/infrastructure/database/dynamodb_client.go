package database

import (
	"context"
	"fmt"

	appconfig "servicescale/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectDynamoDB creates a DynamoDB client.
//
// Local-friendly settings:
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY default to "local"
//   - DYNAMODB_ENDPOINT points the client at DynamoDB Local (e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

// NewAWSConfig builds the SDK configuration shared by DynamoDB and S3.
func NewAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	// Local emulators do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if cfg.DynamoDBEndpoint != "" || cfg.S3Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			switch {
			case service == dynamodb.ServiceID && cfg.DynamoDBEndpoint != "":
				return aws.Endpoint{URL: cfg.DynamoDBEndpoint, SigningRegion: region, HostnameImmutable: true}, nil
			case service == s3.ServiceID && cfg.S3Endpoint != "":
				return aws.Endpoint{URL: cfg.S3Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
