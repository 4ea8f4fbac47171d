package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"seaport/internal/adapters/out/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config is the service configuration. Every key can be overridden by an
// environment variable with the PORT_ prefix, dots replaced by underscores
// (PORT_DATABASE_TYPE, PORT_HTTP_ADDRESS, ...).
type Config struct {
	HTTP     HTTPConfig                `mapstructure:"http"`
	Database postgres.ConnectionConfig `mapstructure:"database"`
	Clock    ClockConfig               `mapstructure:"clock"`
	Port     PortConfig                `mapstructure:"port"`
	Log      LogConfig                 `mapstructure:"log"`
}

type HTTPConfig struct {
	Address   string  `mapstructure:"address" validate:"required"`
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"`
	Burst     int     `mapstructure:"burst" validate:"gte=0"`
	Debug     bool    `mapstructure:"debug"`
}

// ClockConfig drives the logical clock. TicksPerRun 0 disables the tick job.
type ClockConfig struct {
	Start       int64  `mapstructure:"start" validate:"gte=0"`
	TickSpec    string `mapstructure:"tick_spec" validate:"required,cronspec"`
	TicksPerRun int64  `mapstructure:"ticks_per_run" validate:"gte=0"`
}

// PortConfig names the contract owner and the principal the background
// jobs act as.
type PortConfig struct {
	Owner          string `mapstructure:"owner" validate:"required"`
	SystemOperator string `mapstructure:"system_operator" validate:"required,nefield=Owner"`
	AllocationSpec string `mapstructure:"allocation_spec" validate:"required,cronspec"`
	SnapshotSpec   string `mapstructure:"snapshot_spec" validate:"required,cronspec"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// LoadConfig reads, in increasing priority: defaults, the config file, a
// .env file and the environment. An empty path searches for config.yaml in
// the working directory and ./configs.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("PORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.address", "0.0.0.0:8080")
	v.SetDefault("http.rate_limit", 20)
	v.SetDefault("http.burst", 40)
	v.SetDefault("http.debug", false)

	v.SetDefault("database.type", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "seaport")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "seaport")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "seaport.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("clock.start", 0)
	v.SetDefault("clock.tick_spec", "* * * * * *")
	v.SetDefault("clock.ticks_per_run", 1)

	v.SetDefault("port.owner", "port-authority")
	v.SetDefault("port.system_operator", "port-scheduler")
	v.SetDefault("port.allocation_spec", "*/5 * * * * *")
	v.SetDefault("port.snapshot_spec", "*/15 * * * * *")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// ValidateConfig checks the validate tags of cfg, including six-field cron
// expressions.
func ValidateConfig(cfg Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("cronspec", func(fl validator.FieldLevel) bool {
		_, err := cronParser.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf("%s failed %s (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
	}
	return nil
}
