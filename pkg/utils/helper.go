package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ParseID reads an integer route parameter.
func ParseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", param)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", param, raw)
	}

	return id, nil
}

// AverageRating is the arithmetic mean of ratings, 0 for an empty set.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating
	}

	return float64(sum) / float64(len(ratings))
}
