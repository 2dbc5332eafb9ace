package sources

// Config selects where upstream documents are read from.
type Config struct {
	// Kind is the document location (directory, bucket).
	Kind string `mapstructure:"kind" default:"directory"`
	// Directory holds the documents when Kind is directory.
	Directory string `mapstructure:"directory" default:"data"`
	// BucketPrefix is the object prefix when Kind is bucket.
	BucketPrefix string `mapstructure:"bucket_prefix" default:"sources"`
	// TeachersFromDB reads the roster from the database instead of teachers.json.
	TeachersFromDB bool `mapstructure:"teachers_from_db" default:"false"`
}

const (
	KindDirectory = "directory"
	KindBucket    = "bucket"
)

