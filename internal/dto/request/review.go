package request

type CreateReviewRequest struct {
	MovieID  int64  `json:"movieId" validate:"required,min=1"`
	UserName string `json:"userName" validate:"required,notblank"`
	Comment  string `json:"comment" validate:"required,notblank"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
}
