package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/service"
)

type createCategoryRequest struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID *uint  `json:"user_id"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *Handler) ListCategories(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	categories, err := h.svc.Categories.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	category, err := h.svc.Categories.Create(c.Request.Context(), service.CategoryInput{
		UserID: userIDOrDefault(req.UserID),
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"category": category, "message": "Category created"})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCategoryRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	category, err := h.svc.Categories.Update(c.Request.Context(), id, service.CategoryUpdate{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"category": category, "message": "Category updated"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Category deleted"})
}
