package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

// InitConfig loads configuration from an optional config file and the
// environment. Environment variables always win, so deployments only
// need to set what differs from the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		log.Println("error loading config from file, relying on environment", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "lokamart")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nsq.nsqd_address", "localhost:4150")

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "lokamart")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")

	v.SetDefault("tracking.tick_interval_seconds", 1)
	v.SetDefault("tracking.sim_loop_ticks", 60)
	v.SetDefault("tracking.pickup_offset_deg", 0.005)
	v.SetDefault("tracking.fallback_dest_deg", 0.01)
	v.SetDefault("tracking.store_search_radius_km", 10)
	v.SetDefault("tracking.max_telemetry_accuracy", 100)
}
