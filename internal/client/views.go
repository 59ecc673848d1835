package client

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"movie-review/internal/dto/response"
)

const timeLayout = "2006-01-02 15:04"

// RenderMovies prints the list view. Averages come from the server.
func RenderMovies(w io.Writer, movies []response.MovieResponse) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies yet. Type 'add' to create one.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tGENRE\tYEAR\tAVG\tREVIEWS")
	for _, m := range movies {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.1f\t%d\n",
			m.ID, m.Title, m.Genre, m.ReleaseYear, m.AverageRating, len(m.Reviews))
	}
	tw.Flush()
}

// RenderMovie prints the detail view header. rating may be nil when the
// rating call failed, then the average embedded in the movie is shown.
func RenderMovie(w io.Writer, movie *response.MovieResponse, rating *response.MovieRatingResponse) {
	average := movie.AverageRating
	if rating != nil {
		average = rating.AverageRating
	}

	fmt.Fprintf(w, "#%d %s (%d)\n", movie.ID, movie.Title, movie.ReleaseYear)
	fmt.Fprintf(w, "Genre: %s\n", movie.Genre)
	fmt.Fprintf(w, "Average rating: %.1f\n", average)
	fmt.Fprintln(w, movie.Description)
}

// RenderReviews prints reviews in the order given, newest first from the
// server.
func RenderReviews(w io.Writer, reviews []response.ReviewResponse) {
	fmt.Fprintf(w, "\nReviews (%d)\n", len(reviews))
	if len(reviews) == 0 {
		fmt.Fprintln(w, "  No reviews yet. Type 'review' to add one.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRATING\tBY\tPOSTED\tCOMMENT")
	for _, r := range reviews {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, stars(r.Rating), r.UserName, r.CreatedAt.Local().Format(timeLayout), oneLine(r.Comment))
	}
	tw.Flush()
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("*", rating) + strings.Repeat(".", 5-rating)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func renderHelp(w io.Writer, view View) {
	switch view {
	case ViewDetail:
		fmt.Fprintln(w, "Commands: review | delete <review-id> | add | refresh | back | quit")
	default:
		fmt.Fprintln(w, "Commands: open <id> | delete <id> | add | refresh | quit")
	}
}

func alert(w io.Writer, err error) {
	fmt.Fprintf(w, "ALERT: %v\n", err)
}
