package entity

type Movie struct {
	Base
	Title       string `db:"title"`
	Description string `db:"description"`
	Genre       string `db:"genre"`
	ReleaseYear int    `db:"release_year"`

	// Reviews is filled by the eager-loading queries, newest first.
	Reviews []*Review `db:"-"`
}

// Ratings lists the rating of each loaded review.
func (m *Movie) Ratings() []int {
	ratings := make([]int, len(m.Reviews))
	for i, review := range m.Reviews {
		ratings[i] = review.Rating
	}
	return ratings
}
