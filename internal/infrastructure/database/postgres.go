package database

import (
	"fmt"

	"facility-booking/config"
	"facility-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection opens the audit trail database and migrates its table
func NewPostgresConnection(cfg config.DBConfig, timezone string) (*gorm.DB, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	if err := db.AutoMigrate(&entity.AuditLog{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate audit log table: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
