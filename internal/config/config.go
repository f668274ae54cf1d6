package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultInputPath  = "resources/input.json"
	DefaultOutputPath = "resources/output.json"

	// ConfigPathEnv names a config file to use instead of searching for one
	ConfigPathEnv = "FLIGHT_HOURS_CONFIG_PATH"
)

// Config holds all configuration for the CLI
type Config struct {
	InputPath    string
	OutputPath   string
	PrettyOutput bool
	Workers      int
	Log          LogConfig
	Store        StoreConfig
	Notify       NotifyConfig

	// ConfigFile is the file that was read, empty when running on defaults
	ConfigFile string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// StoreConfig holds run archive configuration. An empty DBPath disables archiving.
type StoreConfig struct {
	DBPath        string
	BatchSize     int
	FlushInterval time.Duration
}

// NotifyConfig holds overload alert configuration. An empty AMQPURL disables alerts.
type NotifyConfig struct {
	AMQPURL  string
	Exchange string
	Queue    string
}

// Load loads configuration from a config file and environment variables.
// configPath, when set, takes precedence over FLIGHT_HOURS_CONFIG_PATH and
// the search paths.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("pretty_output", true)
	v.SetDefault("workers", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("store.db_path", "")
	v.SetDefault("store.batch_size", 100)
	v.SetDefault("store.flush_interval", time.Second)
	v.SetDefault("notify.amqp_url", "")
	v.SetDefault("notify.exchange", "flight_hours")
	v.SetDefault("notify.queue", "overload_alerts")

	// No config type: any extension viper knows is accepted, config.properties included
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./resources")
	v.AddConfigPath("/etc/flight_hours")

	if configPath == "" {
		configPath = os.Getenv(ConfigPathEnv)
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - defaults + env vars
	}

	v.SetEnvPrefix("FLIGHT_HOURS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		InputPath:    pathSetting(v, "input_path", "inputFilePath", DefaultInputPath),
		OutputPath:   pathSetting(v, "output_path", "outputFilePath", DefaultOutputPath),
		PrettyOutput: v.GetBool("pretty_output"),
		Workers:      v.GetInt("workers"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Store: StoreConfig{
			DBPath:        v.GetString("store.db_path"),
			BatchSize:     v.GetInt("store.batch_size"),
			FlushInterval: v.GetDuration("store.flush_interval"),
		},
		Notify: NotifyConfig{
			AMQPURL:  v.GetString("notify.amqp_url"),
			Exchange: v.GetString("notify.exchange"),
			Queue:    v.GetString("notify.queue"),
		},
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// pathSetting resolves key, then the camelCase legacy key used by older
// config.properties files, then the default. The keys have no viper default
// so IsSet only sees the config file and the environment.
func pathSetting(v *viper.Viper, key, legacyKey, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	if v.IsSet(legacyKey) {
		return v.GetString(legacyKey)
	}
	return def
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.InputPath == "" {
		return fmt.Errorf("input_path must not be empty")
	}

	if cfg.OutputPath == "" {
		return fmt.Errorf("output_path must not be empty")
	}

	if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	if cfg.Store.BatchSize <= 0 {
		return fmt.Errorf("store.batch_size must be greater than 0")
	}

	if cfg.Store.FlushInterval <= 0 {
		return fmt.Errorf("store.flush_interval must be greater than 0")
	}

	if cfg.Notify.AMQPURL != "" && (cfg.Notify.Exchange == "" || cfg.Notify.Queue == "") {
		return fmt.Errorf("notify.exchange and notify.queue are required when notify.amqp_url is set")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
