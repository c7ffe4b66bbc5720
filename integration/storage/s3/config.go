package s3

// Config describes the bucket that mirrors stored media.
type Config struct {
	Bucket         string `env:"MEDIA_S3_BUCKET,required"`
	Region         string `env:"MEDIA_S3_REGION,required"`
	AccessKeyID    string `env:"MEDIA_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"MEDIA_S3_SECRET_KEY"`
	Endpoint       string `env:"MEDIA_S3_ENDPOINT"` // MinIO, Wasabi, Spaces
	BaseURL        string `env:"MEDIA_S3_BASE_URL"` // CDN or public URL base
	ForcePathStyle bool   `env:"MEDIA_S3_FORCE_PATH_STYLE" envDefault:"false"`
	KeyPrefix      string `env:"MEDIA_S3_KEY_PREFIX"`
}
