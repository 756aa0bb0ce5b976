package dto

import "main/model"

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

func ToCategoryResponses(categories []*model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *ToCategoryResponse(category)
	}
	return responses
}
