package storage

// Config holds the object storage connection shared by bucket sources and dataset uploads.
type Config struct {
	// Endpoint is the host:port of the S3-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds both the upstream documents (under sources.bucket_prefix) and the
	// exported datasets (under output.bucket_prefix).
	Bucket string `mapstructure:"bucket" default:"tvgu-data-hub"`
	// Region is passed to MakeBucket when EnsureBucket creates the bucket.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
