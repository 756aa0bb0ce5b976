package handler

import (
	"errors"
	"log"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP taxonomy. Ownership
// mismatches surface as 404, never 403. Anything unrecognized degrades to
// a generic 500 so store internals never leak to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrEmailTaken):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrCategoryTaken):
		utils.Conflict(c, err.Error())
	case errors.Is(err, usecase.ErrNoteNotFound),
		errors.Is(err, usecase.ErrNoNotesInCategory),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrNoCategories):
		utils.NotFound(c, err.Error())
	default:
		log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.InternalError(c, "internal server error")
	}
}
