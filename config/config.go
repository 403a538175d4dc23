package config

import (
	"log"

	"github.com/spf13/viper"

	"roofline/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminAPIToken     string `mapstructure:"ADMIN_API_TOKEN"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling knobs. The snapshot TTL bounds how stale a cached
	// availability grid may get; the resync delay is the pause before the
	// single post-delete refetch.
	SnapshotTTLSeconds int `mapstructure:"SNAPSHOT_TTL_SECONDS"`
	ResyncDelaySeconds int `mapstructure:"RESYNC_DELAY_SECONDS"`
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
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_API_TOKEN", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SNAPSHOT_TTL_SECONDS", 30)
	viper.SetDefault("RESYNC_DELAY_SECONDS", 2)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Regions returns the state-region table. Overridable through the
// "regions" key of the config file; the reference markets otherwise.
func Regions() models.RegionTable {
	if !viper.IsSet("regions") {
		return models.DefaultRegionTable()
	}
	var list []models.StateRegion
	if err := viper.UnmarshalKey("regions", &list); err != nil {
		log.Fatalf("Failed to load region table: %v", err)
	}
	table := make(models.RegionTable, len(list))
	for _, r := range list {
		table[r.Code] = r
	}
	return table
}

// Holidays returns the fixed holiday date list, overridable through the
// "holidays" key of the config file.
func Holidays() []string {
	if !viper.IsSet("holidays") {
		return models.DefaultHolidays()
	}
	return viper.GetStringSlice("holidays")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
