package entities

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrPoolUnavailable = errors.New("unable to acquire a store connection")
)

// Querier is anything statements can be prepared on: a pooled connection, a transaction or the pool itself.
type Querier interface {
	PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
}

type Conn interface {
	Querier
	Close() error
}

type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}

type UserRepo interface {
	All(ctx context.Context, q Querier) ([]User, error)
	Find(ctx context.Context, q Querier, id int) (*User, error)
	Create(ctx context.Context, q Querier, schema *CreateUserSchema) (int64, error)
	Update(ctx context.Context, q Querier, user *User) (*User, error)
	Delete(ctx context.Context, q Querier, id int) (int64, error)
}
