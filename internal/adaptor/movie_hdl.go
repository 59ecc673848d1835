package adaptor

import (
	"errors"
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// GetMovieRating handles GET /movies/{id}/rating
func (h *MovieHandler) GetMovieRating(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	rating, err := h.service.GetAverageRating(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie rating")
		return
	}

	utils.ResponseSuccess(w, rating)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if fieldErrs, err := decodeBody(r, w, &req); err != nil {
		h.log.Debug("Invalid create movie body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", fieldErrs)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PATCH /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	// An empty body is an empty patch
	var req request.MovieUpdateRequest
	if fieldErrs, err := decodeBody(r, w, &req); err != nil && !errors.Is(err, errEmptyBody) {
		h.log.Debug("Invalid update movie body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", fieldErrs)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseMessage(w, "Movie deleted successfully")
}
