package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if fieldErrs, err := decodeBody(r, w, &req); err != nil {
		h.log.Debug("Invalid create review body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", fieldErrs)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}

// GetReviews handles GET /reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetReviews(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// GetMovieReviews handles GET /reviews/movie/{movieId}
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(r, "movieId")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseMessage(w, "Review deleted successfully")
}
