package usecases

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/matthiasBT/usercrud/internal/server/entities"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 2 << 20

type createUserRequest struct {
	Login *string `json:"login"`
}

func (c *BaseController) validateCreateUserSchema(w http.ResponseWriter, r *http.Request) *entities.CreateUserSchema {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !isJSONMediaType(mediaType) {
		c.writeJSON(w, http.StatusBadRequest, "Supply data as JSON")
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	var req createUserRequest
	if err := dec.Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.writeJSON(w, http.StatusRequestEntityTooLarge, "Payload is too large")
			return nil
		}
		c.logger.Debugf("Failed to parse user payload: %+v", err)
		c.writeJSON(w, http.StatusBadRequest, "Failed to parse user payload")
		return nil
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		c.writeJSON(w, http.StatusBadRequest, "Unexpected data after the JSON payload")
		return nil
	}
	if req.Login == nil {
		c.writeJSON(w, http.StatusBadRequest, "Missing field: login")
		return nil
	}
	return &entities.CreateUserSchema{Login: *req.Login}
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// parseUserID rejects ids outside the store's integer range the same way the router rejects non-numeric ones.
func parseUserID(w http.ResponseWriter, r *http.Request) *int {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return nil
	}
	res := int(id)
	return &res
}

func (c *BaseController) writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Errorf("Failed to marshal the response: %s", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
