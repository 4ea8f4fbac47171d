package postgres

import (
	"fmt"
	"time"

	"seaport/internal/adapters/out/postgres/berthrepo"
	"seaport/internal/adapters/out/postgres/cargorepo"
	"seaport/internal/adapters/out/postgres/counterrepo"
	"seaport/internal/adapters/out/postgres/equipmentrepo"
	"seaport/internal/adapters/out/postgres/metricrepo"
	"seaport/internal/adapters/out/postgres/operationrepo"
	"seaport/internal/adapters/out/postgres/queuerepo"
	"seaport/internal/adapters/out/postgres/rolerepo"
	"seaport/internal/adapters/out/postgres/schedulerepo"
	"seaport/internal/adapters/out/postgres/vesselrepo"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionConfig selects the database backend.
type ConnectionConfig struct {
	Type     string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN builds the PostgreSQL connection string. URL wins when set.
func (c ConnectionConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// NewConnection opens the database described by cfg.
//
// SQLite is limited to a single connection: an in-memory database exists
// once per connection, and SQLite serialises writers anyway.
func NewConnection(cfg ConnectionConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = ":memory:"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}

	if cfg.Type == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// NewTestConnection opens a migrated in-memory SQLite database.
func NewTestConnection() (*gorm.DB, error) {
	db, err := NewConnection(ConnectionConfig{Type: "sqlite", Path: ":memory:"})
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate test database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates every table the port engine uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&vesselrepo.VesselDTO{},
		&berthrepo.BerthDTO{},
		&schedulerepo.ScheduleDTO{},
		&queuerepo.QueueEntryDTO{},
		&equipmentrepo.InventoryDTO{},
		&cargorepo.ContainerDTO{},
		&cargorepo.CheckpointDTO{},
		&operationrepo.OperationDTO{},
		&metricrepo.PerformanceMetricDTO{},
		&counterrepo.CounterDTO{},
		&rolerepo.RoleAssignmentDTO{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
