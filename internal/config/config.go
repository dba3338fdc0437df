package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
}

type UploadConfig struct {
	Dir          string
	MaxSizeMB    int
	SheetIndex   int
	WorkerQueues int
}

type CronConfig struct {
	// ProductMasterSpec is a cron expression for the scheduled catalog
	// refresh. Empty disables the schedule.
	ProductMasterSpec string
	ProductMasterPath string
}

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Cron     CronConfig
}

// Load reads configuration from the environment, picking up a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "orderbridge"),
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "orderbridge"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "127.0.0.1"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "change-me"),
			AccessTTLMinutes:  getEnvInt("JWT_ACCESS_TTL_MINUTES", 60),
			RefreshTTLMinutes: getEnvInt("JWT_REFRESH_TTL_MINUTES", 60*24*7),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "./store/uploads"),
			MaxSizeMB:    getEnvInt("UPLOAD_MAX_SIZE_MB", 50),
			SheetIndex:   getEnvInt("UPLOAD_SHEET_INDEX", 1),
			WorkerQueues: getEnvInt("WORKER_CONCURRENCY", 10),
		},
		Cron: CronConfig{
			ProductMasterSpec: getEnv("CRON_PRODUCT_MASTER", ""),
			ProductMasterPath: getEnv("CRON_PRODUCT_MASTER_PATH", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// RedisAddr returns the host:port address for redis clients.
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
