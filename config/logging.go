package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger initializes the logging setup using Logrus
func NewLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()

	// Buat direktori log kalau belum ada
	if _, err := os.Stat("logs"); os.IsNotExist(err) {
		os.Mkdir("logs", 0755)
	}

	// Output ke file log dengan rotasi (pakai lumberjack)
	logger.Out = &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    10,   // Megabytes sebelum log dirotasi
		MaxBackups: 3,    // Jumlah log lama yang disimpan
		MaxAge:     28,   // Umur maksimum file log lama (hari)
		Compress:   true, // Kompres backup
	}

	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Logger telah diinisialisasi dengan sukses!")
	return logger
}
