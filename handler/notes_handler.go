package handler

import (
	"net/http"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	Notes *usecase.NotesService
}

func NewNotesHandler(notes *usecase.NotesService) *NotesHandler {
	return &NotesHandler{Notes: notes}
}

// ListNotes returns every note owned by the caller. An empty collection
// is a 200 with a message, not an error.
func (h *NotesHandler) ListNotes(c *gin.Context) {
	userID := c.GetString("user_id")

	notes, err := h.Notes.ListNotes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(notes) == 0 {
		utils.Message(c, "no notes found")
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

func (h *NotesHandler) GetNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	note, err := h.Notes.GetNote(c.Request.Context(), userID, noteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(*note))
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	userID := c.GetString("user_id")
	note, err := h.Notes.CreateNote(c.Request.Context(), userID, req.Title, req.Content, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNoteResponse(*note))
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	userID := c.GetString("user_id")
	noteID := c.Param("id")

	note, err := h.Notes.UpdateNote(c.Request.Context(), userID, noteID,
		req.Title, req.Content, req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(*note))
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	if err := h.Notes.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		respondError(c, err)
		return
	}
	utils.Message(c, "note deleted successfully")
}
