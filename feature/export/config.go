package export

// Config holds output settings.
type Config struct {
	// Directory is prepended to the output file name. Created when missing.
	Directory string `mapstructure:"directory" default:""`
	// Prettify indents the JSON with two spaces.
	Prettify bool `mapstructure:"prettify" default:"false"`
	// BucketPrefix is the object prefix used by uploads.
	BucketPrefix string `mapstructure:"bucket_prefix" default:"datasets"`
}
