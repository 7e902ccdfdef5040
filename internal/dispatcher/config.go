package dispatcher

import (
	"time"

	"VCS_Link_Checker/internal/link-service/config"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server      ServerConfig
	Postgres    PostgresConfig
	Kafka       KafkaConfig
	Dispatch    DispatchConfig
	LinkChecker config.LinkCheckerConfig
}

type ServerConfig struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"LOG_FILE" default:"./log/dispatcher.log"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9101"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" required:"true"`
	Port         int    `envconfig:"POSTGRES_PORT" required:"true"`
	User         string `envconfig:"POSTGRES_USER" required:"true"`
	Password     string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName       string `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"5"`
}

type KafkaConfig struct {
	Brokers                []string `envconfig:"KAFKA_BROKERS" required:"true"`
	TaskTopic              string   `envconfig:"KAFKA_TASK_TOPIC" default:"link-check-tasks"`
	CatalogTopic           string   `envconfig:"KAFKA_CATALOG_TOPIC" required:"true"`
	CatalogConsumerGroupID string   `envconfig:"KAFKA_CATALOG_CONSUMER_GROUP_ID" default:"link-checker-catalog"`
	CatalogConsumerCnt     int      `envconfig:"KAFKA_CATALOG_CONSUMER_CNT" default:"1"`
}

type DispatchConfig struct {
	Schedule  string        `envconfig:"DISPATCH_SCHEDULE" default:"@every 1m"`
	BatchSize int           `envconfig:"DISPATCH_BATCH_SIZE" default:"50"`
	Timeout   time.Duration `envconfig:"DISPATCH_TIMEOUT" default:"30s"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
