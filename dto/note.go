package dto

import (
	"time"

	"main/model"
	"main/usecase"
)

type CreateNoteRequest struct {
	Title    string `json:"title" binding:"required,notblank"`
	Content  string `json:"content" binding:"required,notblank"`
	Category string `json:"category,omitempty"`
}

// UpdateNoteRequest uses pointers so "field absent" and "field set to empty"
// can be told apart. At least one field must be present.
type UpdateNoteRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *string `json:"categoryId"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type NoteResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Category  *CategoryResponse `json:"category,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func ToCategoryResponse(category *model.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:   category.ID.Hex(),
		Name: category.Name,
	}
}

func ToNoteResponse(nc usecase.NoteWithCategory) NoteResponse {
	return NoteResponse{
		ID:        nc.Note.ID.Hex(),
		Title:     nc.Note.Title,
		Content:   nc.Note.Content,
		Category:  ToCategoryResponse(nc.Category),
		CreatedAt: nc.Note.CreatedAt,
		UpdatedAt: nc.Note.UpdatedAt,
	}
}

func ToNoteResponses(notes []usecase.NoteWithCategory) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, nc := range notes {
		responses[i] = ToNoteResponse(nc)
	}
	return responses
}
