package worker

type Config struct {
	Concurrency int   `yaml:"concurrency"`
	Timeout     int64 `yaml:"timeout_in_ms"`
}
