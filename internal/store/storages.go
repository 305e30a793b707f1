package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sky-take-out/internal/config"
	"github.com/MKhiriev/sky-take-out/internal/logger"
)

// Storages bundles every repository the services depend on.
type Storages struct {
	EmployeeRepository EmployeeRepository
	CategoryRepository CategoryRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories on top of the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already opened pool.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		EmployeeRepository: NewEmployeeRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		db:                 db,
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
