package database

import (
	"fmt"
	"slices"
	"time"

	"tekfix_jobboard/internal/config"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/repositories"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open подключается к базе по database.driver и database.url
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("driver %q is not a SQL database", cfg.Database.Driver)
	}

	logLevel := gormlogger.Warn
	if cfg.Server.Env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Job{}); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	logger.Info("✅ Database migrated")
	return nil
}

// SeedDemoData заполняет пустые таблицы демо-пользователями и вакансиями
func SeedDemoData(db *gorm.DB, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var users int64
		if err := tx.Model(&models.User{}).Count(&users).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if users == 0 {
			demo := repositories.DemoUsers(now)
			if err := tx.Create(&demo).Error; err != nil {
				return fmt.Errorf("failed to seed users: %w", err)
			}
			logger.Info("Seeded demo users", "count", len(demo))
		}

		var jobs int64
		if err := tx.Model(&models.Job{}).Count(&jobs).Error; err != nil {
			return fmt.Errorf("failed to count jobs: %w", err)
		}
		if jobs == 0 {
			// список идет по seq DESC, поэтому первая вакансия вставляется последней
			demo := repositories.DemoJobs(now)
			slices.Reverse(demo)
			if err := tx.Create(&demo).Error; err != nil {
				return fmt.Errorf("failed to seed jobs: %w", err)
			}
			logger.Info("Seeded demo jobs", "count", len(demo))
		}

		return nil
	})
}
