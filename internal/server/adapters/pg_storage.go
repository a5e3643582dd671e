package adapters

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/matthiasBT/usercrud/internal/infra/logging"
	"github.com/matthiasBT/usercrud/internal/server/entities"
)

type PGStorage struct {
	db *sqlx.DB
}

func NewPGStorage(logger logging.ILogger, db *sqlx.DB, maxConns int) *PGStorage {
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	logger.Infof("Connection pool bounded at %d connections", maxConns)
	return &PGStorage{db: db}
}

// Acquire checks a single connection out of the pool. The caller must Close it to give it back.
func (st *PGStorage) Acquire(ctx context.Context) (entities.Conn, error) {
	conn, err := st.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrPoolUnavailable, err)
	}
	return conn, nil
}
