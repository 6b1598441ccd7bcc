package database

import (
	"clientportal/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM.
// TranslateError maps driver unique/foreign-key violations onto the gorm
// sentinels the error taxonomy relies on.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models. Parents first so cascade constraints resolve.
	err = db.AutoMigrate(
		&model.User{},
		&model.Account{},
		&model.Session{},
		&model.Organization{},
		&model.OrganizationMember{},
		&model.Request{},
		&model.Task{},
		&model.Document{},
		&model.Invoice{},
		&model.ChatHistory{},
		&model.ResourceTemplate{},
	)
	if err != nil {
		zap.L().Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}
