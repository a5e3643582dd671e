package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/matthiasBT/usercrud/internal/infra/logging"
	"github.com/matthiasBT/usercrud/internal/server/entities"
)

const (
	queryAllUsers  = "select id, login from users"
	queryFindUser  = "select id, login from users where id = $1"
	queryCreate    = "insert into users (login) values ($1) returning *"
	queryUpdate    = "update users set login = $2 where id = $1 returning id, login"
	queryDeleteOne = "delete from users where id = $1"
)

type PGUserRepo struct {
	logger logging.ILogger
}

func NewPGUserRepo(logger logging.ILogger) *PGUserRepo {
	return &PGUserRepo{logger: logger}
}

func (u *PGUserRepo) All(ctx context.Context, q entities.Querier) ([]entities.User, error) {
	stmt, err := q.PreparexContext(ctx, queryAllUsers)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	users := []entities.User{}
	if err := stmt.SelectContext(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Find returns nil without an error when no user has the given id.
func (u *PGUserRepo) Find(ctx context.Context, q entities.Querier, id int) (*entities.User, error) {
	stmt, err := q.PreparexContext(ctx, queryFindUser)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	var user entities.User
	if err := stmt.GetContext(ctx, &user, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			u.logger.Debugf("User %d not found", id)
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create reports how many rows were inserted; the returned columns are not read.
func (u *PGUserRepo) Create(ctx context.Context, q entities.Querier, schema *entities.CreateUserSchema) (int64, error) {
	stmt, err := q.PreparexContext(ctx, queryCreate)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	res, err := stmt.ExecContext(ctx, schema.Login)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Update expects exactly one row to match. A missing id surfaces as sql.ErrNoRows.
func (u *PGUserRepo) Update(ctx context.Context, q entities.Querier, user *entities.User) (*entities.User, error) {
	stmt, err := q.PreparexContext(ctx, queryUpdate)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	var updated entities.User
	if err := stmt.GetContext(ctx, &updated, user.ID, user.Login); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete reports 0 rather than an error when nothing matched.
func (u *PGUserRepo) Delete(ctx context.Context, q entities.Querier, id int) (int64, error) {
	stmt, err := q.PreparexContext(ctx, queryDeleteOne)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	res, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
