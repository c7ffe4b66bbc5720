// Package s3 mirrors locally stored media into Amazon S3 or an
// S3-compatible service (MinIO, DigitalOcean Spaces, Wasabi).
//
// Mirror implements storage.Mirror. Keys passed by the media store look like
// "images/avatars/1700000000000-me.png" and are uploaded under the optional
// key prefix:
//
//	mirror, err := s3.New(ctx, s3.Config{
//		Bucket: "media",
//		Region: "us-east-1",
//	})
//	if err != nil {
//		return err
//	}
//
//	media, err := storage.New(cfg, storage.WithMirror(mirror))
//
// MinIO needs a custom endpoint and path-style addressing:
//
//	cfg := s3.Config{
//		Bucket:         "media",
//		Region:         "us-east-1",
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// Config can be populated from MEDIA_S3_* environment variables with
// config.Load. SDK errors are mapped onto the storage package sentinels,
// so callers can use errors.Is(err, storage.ErrFileNotFound) and friends.
package s3
