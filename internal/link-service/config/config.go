package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Auth          AuthConfig
	Site          SiteConfig
	LinkChecker   LinkCheckerConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/link-service.log"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" required:"true"`
	Port         int    `envconfig:"POSTGRES_PORT" required:"true"`
	User         string `envconfig:"POSTGRES_USER" required:"true"`
	Password     string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName       string `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"50"`
	MaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"10"`
}

type RedisConfig struct {
	Host        string        `envconfig:"REDIS_HOST" required:"true"`
	Port        int           `envconfig:"REDIS_PORT" required:"true"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL    time.Duration `envconfig:"REDIS_CATALOG_CACHE_TTL" default:"10m"`
	PingRetries int           `envconfig:"REDIS_PING_RETRIES" default:"3"`
}

type ElasticsearchConfig struct {
	Addresses         []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username          string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password          string   `envconfig:"ELASTICSEARCH_PASSWORD"`
	DatasetIndex      string   `envconfig:"ELASTICSEARCH_DATASET_INDEX" default:"datasets"`
	OrganizationIndex string   `envconfig:"ELASTICSEARCH_ORGANIZATION_INDEX" default:"organizations"`
}

type AuthConfig struct {
	JWTSecret       string   `envconfig:"JWT_SECRET" required:"true"`
	AuthorizedUsers []string `envconfig:"AUTHORIZED_USERS"`
}

type SiteConfig struct {
	Title string `envconfig:"SITE_TITLE" default:"CKAN"`
	URL   string `envconfig:"SITE_URL" required:"true"`
}

// LinkCheckerConfig holds the scheduling and broken-link policy. It is read
// once at startup and passed by value afterwards.
type LinkCheckerConfig struct {
	RecheckResourcesAfter       time.Duration `envconfig:"RECHECK_RESOURCES_AFTER" default:"24h"`
	ResendPendingResourcesAfter time.Duration `envconfig:"RESEND_PENDING_RESOURCES_AFTER" default:"2h"`
	BrokenResourceMinFails      int           `envconfig:"BROKEN_RESOURCE_MIN_FAILS" default:"3"`
	BrokenResourceMinHours      int           `envconfig:"BROKEN_RESOURCE_MIN_HOURS" default:"36"`
	DefaultResourcesToCheck     int           `envconfig:"DEFAULT_RESOURCES_TO_CHECK" default:"50"`
	// MaxResourcesToCheck optionally caps n per call; 0 disables the cap.
	MaxResourcesToCheck int `envconfig:"MAX_RESOURCES_TO_CHECK" default:"0"`
}

func (c LinkCheckerConfig) BrokenResourceMinAge() time.Duration {
	return time.Duration(c.BrokenResourceMinHours) * time.Hour
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
