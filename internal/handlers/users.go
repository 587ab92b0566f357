package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/service"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.svc.Users.Create(c.Request.Context(), service.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"user": user, "message": "User created"})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.svc.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.svc.Users.Update(c.Request.Context(), id, service.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"user": user, "message": "User updated"})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "User deleted"})
}

// Login checks credentials only; no session or token is issued.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "username and password are required")
		return
	}
	user, err := h.svc.Users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"user": user, "message": "Login successful"})
}
