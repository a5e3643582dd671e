package usecases

import (
	"net/http"
	"strconv"

	"github.com/matthiasBT/usercrud/internal/infra/pgerrors"
	"github.com/matthiasBT/usercrud/internal/server/entities"
)

const HealthMessage = "Build Simple CRUD API with Go, sqlx, Postgres and chi"

const (
	msgPoolUnavailable = "unable to get postgres client"
	msgFetchFailed     = "unable to fetch users"
	msgCreateFailed    = "unable to create users"
	msgUpdateFailed    = "unable to update users"
	msgDeleteFailed    = "unable to delete users"
	msgUserNotFound    = "user not found"
)

const HeaderRowsAffected = "X-Rows-Affected"

type healthPayload struct {
	Name     string `json:"name"`
	Followee string `json:"followee"`
	Msg      string `json:"msg"`
}

func (c *BaseController) healthCheck(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, healthPayload{Name: "Jill", Followee: "Jim", Msg: HealthMessage})
}

func (c *BaseController) listUsers(w http.ResponseWriter, r *http.Request) {
	conn := c.acquire(w, r)
	if conn == nil {
		return
	}
	defer conn.Close()
	users, err := c.users.All(r.Context(), conn)
	if err != nil {
		c.logStoreFailure(msgFetchFailed, err)
		c.writeJSON(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}
	c.writeJSON(w, http.StatusOK, users)
}

func (c *BaseController) getUser(w http.ResponseWriter, r *http.Request) {
	id := parseUserID(w, r)
	if id == nil {
		return
	}
	conn := c.acquire(w, r)
	if conn == nil {
		return
	}
	defer conn.Close()
	user, err := c.users.Find(r.Context(), conn, *id)
	if err != nil {
		c.logStoreFailure(msgFetchFailed, err)
		c.writeJSON(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}
	if user == nil {
		c.writeJSON(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	c.writeJSON(w, http.StatusOK, user)
}

func (c *BaseController) createUser(w http.ResponseWriter, r *http.Request) {
	schema := c.validateCreateUserSchema(w, r)
	if schema == nil {
		return
	}
	conn := c.acquire(w, r)
	if conn == nil {
		return
	}
	defer conn.Close()
	affected, err := c.users.Create(r.Context(), conn, schema)
	if err != nil {
		c.logStoreFailure(msgCreateFailed, err)
		c.writeJSON(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}
	c.writeJSON(w, http.StatusCreated, affected)
}

func (c *BaseController) updateUser(w http.ResponseWriter, r *http.Request) {
	id := parseUserID(w, r)
	if id == nil {
		return
	}
	schema := c.validateCreateUserSchema(w, r)
	if schema == nil {
		return
	}
	conn := c.acquire(w, r)
	if conn == nil {
		return
	}
	defer conn.Close()
	user, err := c.users.Update(r.Context(), conn, &entities.User{ID: *id, Login: schema.Login})
	if err != nil {
		c.logStoreFailure(msgUpdateFailed, err)
		c.writeJSON(w, http.StatusInternalServerError, msgUpdateFailed)
		return
	}
	c.writeJSON(w, http.StatusOK, user)
}

// deleteUser answers 204 even when nothing matched; the count travels in a header since 204 has no body.
func (c *BaseController) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := parseUserID(w, r)
	if id == nil {
		return
	}
	conn := c.acquire(w, r)
	if conn == nil {
		return
	}
	defer conn.Close()
	affected, err := c.users.Delete(r.Context(), conn, *id)
	if err != nil {
		c.logStoreFailure(msgDeleteFailed, err)
		c.writeJSON(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}
	w.Header().Set(HeaderRowsAffected, strconv.FormatInt(affected, 10))
	w.WriteHeader(http.StatusNoContent)
}

func (c *BaseController) acquire(w http.ResponseWriter, r *http.Request) entities.Conn {
	conn, err := c.pool.Acquire(r.Context())
	if err != nil {
		c.logStoreFailure(msgPoolUnavailable, err)
		c.writeJSON(w, http.StatusInternalServerError, msgPoolUnavailable)
		return nil
	}
	return conn
}

func (c *BaseController) logStoreFailure(msg string, err error) {
	c.logger.Debugf("%s (%s): %+v", msg, pgerrors.Classify(err), err)
}
