package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

const (
	DefaultPort         = "5000"
	DefaultDatabase     = "test"
	DefaultAllowOrigins = "*"
	DefaultAllowHeaders = "Origin, X-Requested-With, Content-Type, Accept"
)

type Config struct {
	Port             string
	MongoURI         string
	Database         string
	DataDir          string
	CORSAllowOrigins []string
	CORSAllowHeaders []string
	logger           *zap.Logger
}

// LoadConfig reads the process configuration from the environment, loading a
// .env file from the working directory first when one exists.
func LoadConfig(logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			logger.Warn("No .env file found; falling back to system environment variables")
		} else {
			logger.Error("Config file load error", zap.Error(err))
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		logger.Debug("Successfully loaded .env file")
	}

	return FromViper(newViper(), logger)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("CORS_ALLOW_ORIGINS", DefaultAllowOrigins)
	v.SetDefault("CORS_ALLOW_HEADERS", DefaultAllowHeaders)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper, logger *zap.Logger) (*Config, error) {
	cfg := &Config{
		Port:             v.GetString("PORT"),
		MongoURI:         v.GetString("CONNECTION"),
		Database:         v.GetString("MONGO_DATABASE"),
		DataDir:          v.GetString("DATA_DIR"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		CORSAllowHeaders: splitList(v.GetString("CORS_ALLOW_HEADERS")),
		logger:           logger,
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{DefaultAllowOrigins}
	}

	if cfg.MongoURI == "" {
		logger.Warn("CONNECTION not set in environment variables")
	}
	if cfg.Database == "" {
		cfg.Database = databaseFromURI(cfg.MongoURI)
	}

	if cfg.DataDir == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg.DataDir = dir
	}

	logger.Debug("Configuration initialized",
		zap.String("port", cfg.Port),
		zap.String("mongo_uri", maskURI(cfg.MongoURI)),
		zap.String("database", cfg.Database))
	return cfg, nil
}

// databaseFromURI returns the database named in the connection string's path,
// or the driver-wide default when the string names none.
func databaseFromURI(uri string) string {
	if uri == "" {
		return DefaultDatabase
	}
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return DefaultDatabase
	}
	return cs.Database
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func maskURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	scheme := strings.Index(uri, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return uri
	}
	return uri[:scheme+3] + "****" + uri[at:]
}
