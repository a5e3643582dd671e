package usecases

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
	"github.com/matthiasBT/usercrud/internal/server/entities"
)

type fakeConn struct {
	closed *atomic.Int32
}

func (fc fakeConn) PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error) {
	return nil, errors.New("fakeConn does not prepare statements")
}

func (fc fakeConn) Close() error {
	fc.closed.Add(1)
	return nil
}

type fakePool struct {
	err    error
	closed atomic.Int32
}

func (p *fakePool) Acquire(ctx context.Context) (entities.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	return fakeConn{closed: &p.closed}, nil
}

// memUserRepo keeps users in insertion order and mimics the store's row-count semantics.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  []entities.User
	err    error
}

func (m *memUserRepo) All(ctx context.Context, q entities.Querier) ([]entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	res := make([]entities.User, len(m.users))
	copy(res, m.users)
	return res, nil
}

func (m *memUserRepo) Find(ctx context.Context, q entities.Querier, id int) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Create(ctx context.Context, q entities.Querier, schema *entities.CreateUserSchema) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	m.users = append(m.users, entities.User{ID: m.nextID, Login: schema.Login})
	return 1, nil
}

func (m *memUserRepo) Update(ctx context.Context, q entities.Querier, user *entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users[i].Login = user.Login
			updated := m.users[i]
			return &updated, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memUserRepo) Delete(ctx context.Context, q entities.Querier, id int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
