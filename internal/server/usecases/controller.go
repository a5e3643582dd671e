package usecases

import (
	"github.com/go-chi/chi/v5"
	"github.com/matthiasBT/usercrud/internal/infra/logging"
	"github.com/matthiasBT/usercrud/internal/server/entities"
)

const idPattern = "{id:-?[0-9]+}"

type BaseController struct {
	logger logging.ILogger
	pool   entities.Pool
	users  entities.UserRepo
}

func NewBaseController(logger logging.ILogger, pool entities.Pool, users entities.UserRepo) *BaseController {
	return &BaseController{
		logger: logger,
		pool:   pool,
		users:  users,
	}
}

func (c *BaseController) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/healthchecker", c.healthCheck)
	r.Get("/users", c.listUsers)
	r.Post("/users", c.createUser)
	r.Get("/users/"+idPattern, c.getUser)
	r.Put("/users/"+idPattern, c.updateUser)
	r.Delete("/users/"+idPattern, c.deleteUser)
	return r
}
