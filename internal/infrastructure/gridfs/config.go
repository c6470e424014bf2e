package gridfs

type Config struct {
	BucketName string `yaml:"bucket_name"`
	Timeout    int64  `yaml:"timeout_in_ms"`
}
