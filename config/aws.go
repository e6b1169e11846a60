package config

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadAWSConfig menyiapkan konfigurasi AWS SDK untuk backend penyimpanan S3.
// Hanya dipanggil kalau STORAGE_BACKEND=s3.
func LoadAWSConfig(cfg *Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(
			aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
			),
		),
	)
	if err != nil {
		return aws.Config{}, err
	}

	log.Println("✅ Konfigurasi AWS SDK berhasil dimuat")
	log.Printf("📦 Menggunakan wilayah AWS: %s", awsCfg.Region)
	return awsCfg, nil
}
