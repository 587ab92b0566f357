package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/service"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errNoData      = errors.New("no data provided")
)

// respond writes a success envelope: body plus "success": true.
func respond(c *gin.Context, status int, body gin.H) {
	body["success"] = true
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondError maps service error kinds to status codes. Anything else is
// logged and reported as a 500 without details.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, service.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, service.ErrUnauthorized):
			status = http.StatusUnauthorized
		}
		fail(c, status, svcErr.Message)
		return
	}

	log.Printf("[error] %s %s request_id=%s: %v", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), err)
	fail(c, http.StatusInternalServerError, "internal server error")
}

// bindBody decodes a JSON object into dst. An empty object is rejected with
// errNoData, so partial updates always carry at least one field.
func bindBody(c *gin.Context, dst interface{}) error {
	var fields map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&fields, binding.JSON); err != nil {
		return errInvalidBody
	}
	if len(fields) == 0 {
		return errNoData
	}
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		return errInvalidBody
	}
	return nil
}

// pathID parses a numeric path parameter; non-numeric ids are answered with 404.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "resource not found")
		return 0, false
	}
	return uint(id), true
}

// queryUserID reads ?user_id, defaulting to the default user.
func queryUserID(c *gin.Context) (uint, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return model.DefaultUserID, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user_id")
		return 0, false
	}
	return uint(id), true
}

func userIDOrDefault(id *uint) uint {
	if id == nil || *id == 0 {
		return model.DefaultUserID
	}
	return *id
}
