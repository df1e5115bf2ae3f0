package contract

type NoteResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	OwnerID   int    `json:"owner_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type NoteRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"omitempty,max=100000"`
}

// UpdateNoteRequest addresses the note by id in the body (PUT /notes).
// Only fields present in the payload are applied.
type UpdateNoteRequest struct {
	ID    int     `json:"id" validate:"required,min=1"`
	Title *string `json:"title" validate:"omitempty,min=1,max=200"`
	Body  *string `json:"body" validate:"omitempty,max=100000"`
}

type NoteLabelResponse struct {
	ID      int `json:"id"`
	NoteID  int `json:"note_id"`
	LabelID int `json:"label_id"`
}

type NoteCategoryResponse struct {
	ID         int `json:"id"`
	NoteID     int `json:"note_id"`
	CategoryID int `json:"category_id"`
}
