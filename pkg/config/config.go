package config

import "time"

// APIGateway definition api_gateway YAML structure
type APIGateway struct {
	Port             string        `mapstructure:"port"`
	MemberService    ServiceConfig `mapstructure:"member"`
	AssistantService ServiceConfig `mapstructure:"assistant"`
}

// Member definition member_service YAML structure
type Member struct {
	Port       string        `mapstructure:"port"`
	IP         string        `mapstructure:"ip"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`

	PostgreSQL  DatabaseConfig `mapstructure:"pg"`
	MongoSQL    DatabaseConfig `mapstructure:"mongo"`
	RedisMember RedisConfig    `mapstructure:"redis"`
	Minio       MinioConfig    `mapstructure:"minio"`
	SMTP        SMTPConfig     `mapstructure:"smtp"`
}

// Chat definition chat_service YAML structure
type Chat struct {
	Port          string
	MongoSQL      DatabaseConfig `mapstructure:"mongo"`
	Redis         RedisConfig    `mapstructure:"redis"`
	Kafka         KafkaConfig    `mapstructure:"kafka"`
	MemberService ServiceConfig  `mapstructure:"member"`
}

// Notification definition notification_service YAML structure
type Notification struct {
	MongoSQL DatabaseConfig `mapstructure:"mongo"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
}

// Assistant definition assistant_service YAML structure
type Assistant struct {
	Port       string         `mapstructure:"port"`
	PostgreSQL DatabaseConfig `mapstructure:"pg"`

	GoogleAPIKey   string `mapstructure:"google_api_key"`
	GoogleCSEID    string `mapstructure:"google_cse_id"`
	GroqAPIKey     string `mapstructure:"groq_api_key"`
	GroqModel      string `mapstructure:"groq_model"`
	RequestTimeout int    `mapstructure:"request_timeout"`
}

// ServiceConfig definition service port & name
type ServiceConfig struct {
	Port string `mapstructure:"service_port"`
	Name string `mapstructure:"service_name"`
}

// RedisConfig definition redis setting
type RedisConfig struct {
	RedisDB int `mapstructure:"redis_db"`
}

// KafkaConfig definition kafka setting
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	GroupID string   `mapstructure:"group_id"`
}

// MinioConfig definition minio setting
type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// SMTPConfig definition mail sender setting
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// DatabaseConfig definition db setting
type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Database      string `mapstructure:"database"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}
