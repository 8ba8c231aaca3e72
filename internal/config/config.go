package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data modes for pages that have no upstream endpoint.
const (
	DataModeMemory   = "memory"
	DataModeDatabase = "database"
)

type Config struct {
	AppEnv string
	Port   string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	DataMode string

	UpstreamURL     string
	UpstreamToken   string
	UpstreamTimeout time.Duration
	UploadTimeout   time.Duration

	UploadDir     string
	PublicBaseURL string
	CORSOrigins   []string

	AssistantDelay       time.Duration
	AssistantMaxMessages int
	TicketMaxMessages    int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: reading config.yaml: %v", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "./trust.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "trust")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DATA_MODE", DataModeMemory)
	v.SetDefault("UPSTREAM_URL", "")
	v.SetDefault("UPSTREAM_TOKEN", "")
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	v.SetDefault("UPLOAD_TIMEOUT_SECONDS", 30)
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("ASSISTANT_DELAY_MS", 1000)
	v.SetDefault("ASSISTANT_MAX_MESSAGES", 100)
	v.SetDefault("TICKET_MAX_MESSAGES", 200)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppEnv:               v.GetString("APP_ENV"),
		Port:                 v.GetString("PORT"),
		DBDriver:             strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:               v.GetString("DB_PATH"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSSLMode:            v.GetString("DB_SSLMODE"),
		DataMode:             strings.ToLower(v.GetString("DATA_MODE")),
		UpstreamURL:          strings.TrimRight(v.GetString("UPSTREAM_URL"), "/"),
		UpstreamToken:        v.GetString("UPSTREAM_TOKEN"),
		UpstreamTimeout:      time.Duration(v.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		UploadTimeout:        time.Duration(v.GetInt("UPLOAD_TIMEOUT_SECONDS")) * time.Second,
		UploadDir:            v.GetString("UPLOAD_DIR"),
		PublicBaseURL:        strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		CORSOrigins:          splitList(v.GetString("CORS_ORIGINS")),
		AssistantDelay:       time.Duration(v.GetInt("ASSISTANT_DELAY_MS")) * time.Millisecond,
		AssistantMaxMessages: v.GetInt("ASSISTANT_MAX_MESSAGES"),
		TicketMaxMessages:    v.GetInt("TICKET_MAX_MESSAGES"),
	}
}

// UsesDatabase reports whether mock-only pages should be backed by the gorm store.
func (c *Config) UsesDatabase() bool {
	return c.DataMode == DataModeDatabase
}

// UsesUpstream reports whether an external REST backend is configured.
func (c *Config) UsesUpstream() bool {
	return c.UpstreamURL != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
