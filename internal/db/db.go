package db

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Wisofer/GlowNic-sub000/internal/config"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

// indexes são guardas que o AutoMigrate não sabe declarar (índice parcial).
// A sintaxe vale para postgres e sqlite.
var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_slot
		ON appointments (salon_id, "date", "time")
		WHERE status <> 'cancelled'`,
}

func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	res := db.Exec(`
        UPDATE salons
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone)
	if res.Error != nil {
		log.Warn("timezone backfill failed", "error", res.Error)
	} else if res.RowsAffected > 0 {
		log.Info("timezone backfilled", "salons", res.RowsAffected, "timezone", cfg.DefaultTimezone)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Salon{},
		&models.Employee{},
		&models.Service{},
		&models.WorkingHours{},
		&models.BlockedTime{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.Transaction{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, ddl := range indexes {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("migrate indexes: %w", err)
		}
	}

	return nil
}
