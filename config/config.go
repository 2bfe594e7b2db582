package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session state backend: "memory" (default) or "redis".
	SessionBackend string `mapstructure:"SESSION_BACKEND"`
	// Session/queue TTL in minutes, applied by the redis backend and the reaper.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`
	// ReaperEnabled starts the asynq-based session expiry worker (needs Redis).
	ReaperEnabled bool `mapstructure:"REAPER_ENABLED"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`
	RedisReaperDB  int    `mapstructure:"REDIS_REAPER_DB"`

	// Personalized booking link base, claims payload is appended to it.
	PURLBaseURL string `mapstructure:"PURL_BASE_URL"`

	// Tavus video conversation API.
	TavusAPIKey      string `mapstructure:"TAVUS_API_KEY"`
	TavusPersonaID   string `mapstructure:"TAVUS_PERSONA_ID"`
	TavusCallbackURL string `mapstructure:"TAVUS_CALLBACK_URL"`

	// Retell voice call API.
	RetellAPIKey          string `mapstructure:"RETELL_API_KEY"`
	RetellInboundAgentID  string `mapstructure:"RETELL_INBOUND_AGENT_ID"`
	RetellOutboundAgentID string `mapstructure:"RETELL_OUTBOUND_AGENT_ID"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("REAPER_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("REDIS_REAPER_DB", 2)
	viper.SetDefault("PURL_BASE_URL", "https://book.voxaris.io/b/")
	viper.SetDefault("TAVUS_API_KEY", "")
	viper.SetDefault("TAVUS_PERSONA_ID", "")
	viper.SetDefault("TAVUS_CALLBACK_URL", "")
	viper.SetDefault("RETELL_API_KEY", "")
	viper.SetDefault("RETELL_INBOUND_AGENT_ID", "")
	viper.SetDefault("RETELL_OUTBOUND_AGENT_ID", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
