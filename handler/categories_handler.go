package handler

import (
	"net/http"

	"main/dto"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// Categories are global lookup entities; creation requires an
// authenticated caller but ownership is not recorded.

func (h *NotesHandler) ListCategories(c *gin.Context) {
	categories, err := h.Notes.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// ListNotesByCategory returns the caller's notes in the given category.
func (h *NotesHandler) ListNotesByCategory(c *gin.Context) {
	userID := c.GetString("user_id")
	categoryID := c.Param("categoryId")

	notes, err := h.Notes.ListNotesByCategory(c.Request.Context(), userID, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

func (h *NotesHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	category, err := h.Notes.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}
