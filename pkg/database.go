package pkg

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/edublog/blog-service/internal/config"
	"github.com/edublog/blog-service/internal/models"
)

// InitDatabase creates the database when missing, connects and migrates
// the schema. Called once at startup before the server accepts traffic.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	if err := createDatabaseIfMissing(cfg); err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{}
	if cfg.Environment != "development" {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// createDatabaseIfMissing connects to the postgres maintenance database
// and creates the target database when it does not exist yet.
func createDatabaseIfMissing(cfg *config.Config) error {
	maintenance, err := gorm.Open(postgres.Open(cfg.Database.MaintenanceDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to maintenance database: %w", err)
	}
	defer func() {
		if sqlDB, err := maintenance.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	var count int64
	err = maintenance.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", cfg.Database.Name).
		Scan(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}
	if count > 0 {
		return nil
	}

	// CREATE DATABASE does not support bind parameters; the name comes
	// from configuration, not request input.
	stmt := fmt.Sprintf("CREATE DATABASE %q", cfg.Database.Name)
	if err := maintenance.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to create database %s: %w", cfg.Database.Name, err)
	}
	return nil
}
