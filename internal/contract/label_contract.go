package contract

type LabelResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LabelRequest struct {
	Name string `json:"name" validate:"required,min=1,max=80"`
}

type UpdateLabelRequest struct {
	ID   int     `json:"id" validate:"required,min=1"`
	Name *string `json:"name" validate:"omitempty,min=1,max=80"`
}
