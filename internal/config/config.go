package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Storage StorageConfig
	Limits  LimitsConfig
	Backup  BackupConfig
	// AdminAPIKey gates the stats and export endpoints. Empty means the
	// gate is bypassed (dev mode).
	AdminAPIKey string
	Version     string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// Timezone used for the display timestamp on persisted responses.
	Timezone string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type StorageConfig struct {
	// DataDir holds the durable per-response JSON records and the shared
	// workbook. TestDataDir is used instead when Env is "test".
	DataDir       string
	TestDataDir   string
	ExcelFilename string
}

type LimitsConfig struct {
	// Requests per window, app-wide and for /api specifically.
	GeneralMax int
	APIMax     int
	Window     time.Duration
}

type BackupConfig struct {
	Enabled  bool
	MaxFiles int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.timezone", "Asia/Bangkok")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("storage.data_dir", "data/responses")
	viper.SetDefault("storage.test_data_dir", "data/test_responses")
	viper.SetDefault("storage.excel_filename", "responses.xlsx")
	viper.SetDefault("limits.general_max", 1000)
	viper.SetDefault("limits.api_max", 20)
	viper.SetDefault("limits.window", 15*60)
	viper.SetDefault("backup.enabled", true)
	viper.SetDefault("backup.max_files", 10)
	viper.SetDefault("version", "1.0.0")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			Timezone:     viper.GetString("server.timezone"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Storage: StorageConfig{
			DataDir:       viper.GetString("storage.data_dir"),
			TestDataDir:   viper.GetString("storage.test_data_dir"),
			ExcelFilename: viper.GetString("storage.excel_filename"),
		},
		Limits: LimitsConfig{
			GeneralMax: viper.GetInt("limits.general_max"),
			APIMax:     viper.GetInt("limits.api_max"),
			Window:     viper.GetDuration("limits.window") * time.Second,
		},
		Backup: BackupConfig{
			Enabled:  viper.GetBool("backup.enabled"),
			MaxFiles: viper.GetInt("backup.max_files"),
		},
		AdminAPIKey: viper.GetString("admin_api_key"),
		Version:     viper.GetString("version"),
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		config.Storage.DataDir = dir
	}
	if name := os.Getenv("EXCEL_FILENAME"); name != "" {
		config.Storage.ExcelFilename = name
	}
	if key := os.Getenv("ADMIN_API_KEY"); key != "" {
		config.AdminAPIKey = key
	}
	if max := os.Getenv("RATE_LIMIT_MAX"); max != "" {
		if m, err := strconv.Atoi(max); err == nil {
			config.Limits.GeneralMax = m
		}
	}
	if max := os.Getenv("BACKUP_MAX_FILES"); max != "" {
		if m, err := strconv.Atoi(max); err == nil {
			config.Backup.MaxFiles = m
		}
	}
	if enabled := os.Getenv("BACKUP_ENABLED"); enabled != "" {
		config.Backup.Enabled = enabled == "true"
	}

	return config, nil
}

// ResponsesDir returns the directory durable records are written to,
// switching to the test directory in the test environment.
func (c *Config) ResponsesDir() string {
	if c.Logger.Env == "test" {
		return c.Storage.TestDataDir
	}
	return c.Storage.DataDir
}

// ExcelPath returns the full path of the shared workbook.
func (c *Config) ExcelPath() string {
	return filepath.Join(c.ResponsesDir(), c.Storage.ExcelFilename)
}
