package config

import (
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config menampung seluruh konfigurasi aplikasi yang dimuat saat startup.
// Dibangun sekali di main dan di-inject ke komponen lain.
type Config struct {
	Environment   string
	Port          string
	SessionSecret string
	LogLevel      string

	// Database: "sqlite" (default) atau "postgres"
	DBDriver         string
	SQLitePath       string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string

	// Penyimpanan avatar: "local" (default) atau "s3"
	StorageBackend string
	UploadDir      string

	CORSOrigins []string

	AWSRegion          string
	AWSBucketName      string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

var loadConfigOnce sync.Once

// LoadConfig loads configuration from .env or config.yaml using Viper
func LoadConfig() (*Config, error) {
	loadConfigOnce.Do(func() {
		// Coba muat dari .env dulu, lalu fallback ke config.yaml
		viper.SetConfigFile(".env")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigFile("config.yaml")
			if err := viper.ReadInConfig(); err != nil {
				// Tanpa file konfigurasi tetap jalan dengan env + default
				log.Println("Tidak ada file konfigurasi, memakai environment dan default:", err)
			}
		}

		viper.SetDefault("PORT", "5000")
		viper.SetDefault("ENVIRONMENT", "development")
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("DB_DRIVER", "sqlite")
		viper.SetDefault("SQLITE_PATH", "site.db")
		viper.SetDefault("STORAGE_BACKEND", "local")
		viper.SetDefault("UPLOAD_DIR", "uploads")
		viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	})

	cfg := &Config{
		Environment:   viper.GetString("ENVIRONMENT"),
		Port:          viper.GetString("PORT"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
		LogLevel:      viper.GetString("LOG_LEVEL"),

		DBDriver:         viper.GetString("DB_DRIVER"),
		SQLitePath:       viper.GetString("SQLITE_PATH"),
		PostgresUser:     viper.GetString("POSTGRES_USER"),
		PostgresPassword: viper.GetString("POSTGRES_PASSWORD"),
		PostgresDB:       viper.GetString("POSTGRES_DB"),
		PostgresHost:     viper.GetString("POSTGRES_HOST"),
		PostgresPort:     viper.GetString("POSTGRES_PORT"),

		StorageBackend: viper.GetString("STORAGE_BACKEND"),
		UploadDir:      viper.GetString("UPLOAD_DIR"),

		CORSOrigins: splitOrigins(viper.GetString("CORS_ORIGINS")),

		AWSAccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          viper.GetString("AWS_REGION"),
		AWSBucketName:      viper.GetString("AWS_BUCKET_NAME"),
	}

	log.Println("✅ Konfigurasi berhasil dimuat!")
	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
