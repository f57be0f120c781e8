package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"compras/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM.
// maxOpenConns bounds the pool; values below 1 leave the driver default.
func NewConnection(dsn string, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.Usuario{},
		&model.CentroCusto{},
		&model.Fornecedor{},
		&model.Solicitacao{},
		&model.Item{},
		&model.Aprovacao{},
		&model.Cotacao{},
		&model.CotacaoItem{},
		&model.Finalizacao{},
		&model.FinalizacaoItem{},
		&model.AuditLog{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// Pinger checks that the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}

type gormPinger struct {
	db *gorm.DB
}

func NewPinger(db *gorm.DB) Pinger {
	return &gormPinger{db: db}
}

func (p *gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
