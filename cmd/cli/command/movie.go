package command

import (
	"fmt"
	"strconv"

	"movie-review/internal/client"
	"movie-review/internal/dto/request"
	"movie-review/pkg/utils"

	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Movie management commands",
	Long:  `List, inspect, create, update and delete movies`,
}

var listMoviesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all movies with their average rating",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		movies, err := newAPI().ListMovies(cmd.Context())
		if err != nil {
			return err
		}

		client.RenderMovies(cmd.OutOrStdout(), movies)
		return nil
	},
}

var getMovieCmd = &cobra.Command{
	Use:   "get [movie-id]",
	Short: "Show a movie and its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		movie, err := newAPI().GetMovie(cmd.Context(), movieID)
		if err != nil {
			return err
		}

		client.RenderMovie(cmd.OutOrStdout(), movie, nil)
		client.RenderReviews(cmd.OutOrStdout(), movie.Reviews)
		return nil
	},
}

var ratingMovieCmd = &cobra.Command{
	Use:   "rating [movie-id]",
	Short: "Show the average rating of a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		rating, err := newAPI().GetMovieRating(cmd.Context(), movieID)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Movie %d average rating: %.1f\n", rating.MovieID, rating.AverageRating)
		return nil
	},
}

var createMovieCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a movie",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := request.MovieRequest{}
		req.Title, _ = cmd.Flags().GetString("title")
		req.Description, _ = cmd.Flags().GetString("description")
		req.Genre, _ = cmd.Flags().GetString("genre")
		req.ReleaseYear, _ = cmd.Flags().GetInt("year")

		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return fmt.Errorf("invalid movie: %s", utils.FormatValidationErrors(errs))
		}

		movie, err := newAPI().CreateMovie(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Movie created with ID %d\n", movie.ID)
		return nil
	},
}

var updateMovieCmd = &cobra.Command{
	Use:   "update [movie-id]",
	Short: "Update selected fields of a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		// Only flags given on the command line are sent
		req := request.MovieUpdateRequest{}
		flags := cmd.Flags()
		if flags.Changed("title") {
			title, _ := flags.GetString("title")
			req.Title = &title
		}
		if flags.Changed("description") {
			description, _ := flags.GetString("description")
			req.Description = &description
		}
		if flags.Changed("genre") {
			genre, _ := flags.GetString("genre")
			req.Genre = &genre
		}
		if flags.Changed("year") {
			year, _ := flags.GetInt("year")
			req.ReleaseYear = &year
		}

		if req.IsEmpty() {
			return fmt.Errorf("nothing to update: pass at least one of --title, --description, --genre, --year")
		}
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return fmt.Errorf("invalid movie: %s", utils.FormatValidationErrors(errs))
		}

		movie, err := newAPI().UpdateMovie(cmd.Context(), movieID, req)
		if err != nil {
			return err
		}

		client.RenderMovie(cmd.OutOrStdout(), movie, nil)
		return nil
	},
}

var deleteMovieCmd = &cobra.Command{
	Use:   "delete [movie-id]",
	Short: "Delete a movie and all its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := client.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).
				Confirm(fmt.Sprintf("Delete movie %d and all its reviews?", movieID), false)
			if err != nil || !ok {
				return err
			}
		}

		if err := newAPI().DeleteMovie(cmd.Context(), movieID); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Movie %d deleted\n", movieID)
		return nil
	},
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID %q: must be an integer", what, raw)
	}
	return id, nil
}

func init() {
	for _, c := range []*cobra.Command{createMovieCmd, updateMovieCmd} {
		c.Flags().String("title", "", "movie title")
		c.Flags().String("description", "", "movie description")
		c.Flags().String("genre", "", "movie genre")
		c.Flags().Int("year", 0, "release year (1888-2100)")
	}
	deleteMovieCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	movieCmd.AddCommand(listMoviesCmd, getMovieCmd, ratingMovieCmd, createMovieCmd, updateMovieCmd, deleteMovieCmd)
}
