package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Genre       string `json:"genre" validate:"required,notblank"`
	ReleaseYear int    `json:"releaseYear" validate:"required,min=1888,max=2100"`
}

// MovieUpdateRequest carries a partial update, nil fields are left unchanged.
type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,notblank"`
	Description *string `json:"description,omitempty" validate:"omitnil,notblank"`
	Genre       *string `json:"genre,omitempty" validate:"omitnil,notblank"`
	ReleaseYear *int    `json:"releaseYear,omitempty" validate:"omitnil,min=1888,max=2100"`
}

func (r MovieUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Genre == nil && r.ReleaseYear == nil
}
