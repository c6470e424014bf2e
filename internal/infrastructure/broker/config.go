package broker

type Config struct {
	URI          string
	StreamName   string `yaml:"stream_name"`
	GroupName    string `yaml:"group_name"`
	ClaimMinIdle int64  `yaml:"claim_min_idle_in_ms"` // pending entries idle this long are reclaimed
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}
