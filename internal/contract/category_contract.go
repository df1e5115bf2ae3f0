package contract

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=80"`
}

type UpdateCategoryRequest struct {
	ID   int     `json:"id" validate:"required,min=1"`
	Name *string `json:"name" validate:"omitempty,min=1,max=80"`
}
