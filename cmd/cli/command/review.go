package command

import (
	"fmt"

	"movie-review/internal/client"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review management commands",
	Long:  `List, post and delete reviews. Reviews cannot be edited once posted`,
}

var listReviewsCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api := newAPI()

		var (
			reviews []response.ReviewResponse
			err     error
		)
		if cmd.Flags().Changed("movie") {
			movieID, _ := cmd.Flags().GetInt64("movie")
			reviews, err = api.ListMovieReviews(cmd.Context(), movieID)
		} else {
			reviews, err = api.ListReviews(cmd.Context())
		}
		if err != nil {
			return err
		}

		client.RenderReviews(cmd.OutOrStdout(), reviews)
		return nil
	},
}

var createReviewCmd = &cobra.Command{
	Use:   "create [movie-id]",
	Short: "Post a review (rating 1-5)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		req := request.CreateReviewRequest{MovieID: movieID}
		req.UserName, _ = cmd.Flags().GetString("user")
		req.Comment, _ = cmd.Flags().GetString("comment")
		req.Rating, _ = cmd.Flags().GetInt("rating")

		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return fmt.Errorf("invalid review: %s", utils.FormatValidationErrors(errs))
		}

		review, err := newAPI().CreateReview(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Review %d posted for movie %d\n", review.ID, review.MovieID)
		return nil
	},
}

var deleteReviewCmd = &cobra.Command{
	Use:   "delete [review-id]",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviewID, err := parseID(args[0], "review")
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := client.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).
				Confirm(fmt.Sprintf("Delete review %d?", reviewID), false)
			if err != nil || !ok {
				return err
			}
		}

		if err := newAPI().DeleteReview(cmd.Context(), reviewID); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Review %d deleted\n", reviewID)
		return nil
	},
}

func init() {
	listReviewsCmd.Flags().Int64("movie", 0, "only reviews of this movie")

	createReviewCmd.Flags().String("user", "", "your name")
	createReviewCmd.Flags().String("comment", "", "review text")
	createReviewCmd.Flags().Int("rating", 0, "rating from 1 to 5")

	deleteReviewCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	reviewCmd.AddCommand(listReviewsCmd, createReviewCmd, deleteReviewCmd)
}
