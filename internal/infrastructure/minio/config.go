package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
	Region    string `yaml:"region"`
}

type StoreConfig struct {
	Timeout   int64  `yaml:"timeout_in_ms"`
	Bucket    string `yaml:"bucket"`
	PublicURL string `yaml:"public_url"` // base for object links, defaults to the endpoint
}
