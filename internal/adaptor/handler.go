package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"movie-review/internal/usecase"
	"movie-review/pkg/database"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Movie  *MovieHandler
	Review *ReviewHandler
	Docs   *DocsHandler
	Health *HealthHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
		Docs:   NewDocsHandler(log),
		Health: NewHealthHandler(db, log),
	}
}

var (
	errEmptyBody    = errors.New("request body is empty")
	errTrailingData = errors.New("request body must hold a single JSON object")
)

// decodeBody reads a JSON request body into dst. The returned map, when
// not nil, names the offending field.
func decodeBody(r *http.Request, w http.ResponseWriter, dst any) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil {
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errTrailingData
		}
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return map[string]string{
			typeErr.Field: fmt.Sprintf("Must be of type %s", typeErr.Type.Kind()),
		}, err
	case errors.Is(err, io.EOF):
		return nil, errEmptyBody
	default:
		return nil, err
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
