package redis

type Config struct {
	URI          string
	KeyPrefix    string `yaml:"key_prefix"`
	QueryTimeout int64  `yaml:"query_timeout_in_ms"`
}
