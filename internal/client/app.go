package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type View int

const (
	ViewList View = iota
	ViewDetail
)

func (v View) String() string {
	if v == ViewDetail {
		return "detail"
	}
	return "list"
}

// State is what the root controller tracks. AddMovieOpen overlays either
// view; bumping RefreshToken forces the current view to reload.
type State struct {
	View         View
	SelectedID   int64
	AddMovieOpen bool
	RefreshToken int
}

type loadKey struct {
	view    View
	movieID int64
	token   int
}

type movieDetail struct {
	movie   *response.MovieResponse
	reviews []response.ReviewResponse
	rating  *response.MovieRatingResponse
}

// App is the interactive browser. It reads commands from in and renders to
// out; read failures go to the logger and the view renders without them.
type App struct {
	api    API
	prompt *Prompter
	out    io.Writer
	log    *zap.Logger

	state  State
	loaded *loadKey
	movies []response.MovieResponse

	viewCtx    context.Context
	viewCancel context.CancelFunc
}

func NewApp(api API, in io.Reader, out io.Writer, log *zap.Logger) *App {
	return &App{
		api:    api,
		prompt: NewPrompter(in, out),
		out:    out,
		log:    log.With(zap.String("component", "browse")),
	}
}

func (a *App) State() State {
	return a.state
}

// Run drives the UI until the user quits, stdin closes or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.enterView(ctx, ViewList, 0)
	defer a.leaveView()

	for ctx.Err() == nil {
		if a.state.AddMovieOpen {
			if err := a.addMovie(ctx); err != nil {
				return finished(err)
			}
			continue
		}

		a.refresh(ctx)

		line, err := a.prompt.Line(a.promptLabel())
		if err != nil {
			return finished(err)
		}

		quit, err := a.dispatch(ctx, line)
		if err != nil {
			return finished(err)
		}
		if quit {
			return nil
		}
	}

	return nil
}

func finished(err error) error {
	if errors.Is(err, ErrInputClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// enterView switches views. Requests still running for the previous view
// are cancelled.
func (a *App) enterView(parent context.Context, view View, movieID int64) {
	a.leaveView()
	a.viewCtx, a.viewCancel = context.WithCancel(parent)
	a.state.View = view
	a.state.SelectedID = movieID
	a.loaded = nil
}

func (a *App) leaveView() {
	if a.viewCancel != nil {
		a.viewCancel()
		a.viewCancel = nil
	}
}

func (a *App) promptLabel() string {
	if a.state.View == ViewDetail {
		return fmt.Sprintf("movie %d> ", a.state.SelectedID)
	}
	return "movies> "
}

// refresh reloads the current view when the view, the selection or the
// refresh token changed since the last render.
func (a *App) refresh(ctx context.Context) {
	key := loadKey{view: a.state.View, movieID: a.state.SelectedID, token: a.state.RefreshToken}
	if a.loaded != nil && *a.loaded == key {
		return
	}

	switch a.state.View {
	case ViewDetail:
		if !a.showDetail(ctx) {
			a.refresh(ctx)
			return
		}
	default:
		a.showList()
	}

	a.loaded = &key
}

func (a *App) showList() {
	fmt.Fprintln(a.out, "\n== Movies ==")

	movies, err := a.api.ListMovies(a.viewCtx)
	if err != nil {
		a.log.Warn("Failed to load movies", zap.Error(err))
		fmt.Fprintln(a.out, "Movies are unavailable right now. Type 'refresh' to retry.")
		a.movies = nil
		return
	}

	a.movies = movies
	RenderMovies(a.out, movies)
	renderHelp(a.out, ViewList)
}

// showDetail returns false when the movie is gone and the list is showing
// again.
func (a *App) showDetail(ctx context.Context) bool {
	movieID := a.state.SelectedID

	detail, err := a.loadDetail(a.viewCtx, movieID)
	if err != nil {
		if IsNotFound(err) {
			alert(a.out, err)
			a.enterView(ctx, ViewList, 0)
			return false
		}
		a.log.Warn("Failed to load movie", zap.Int64("movie_id", movieID), zap.Error(err))
		fmt.Fprintf(a.out, "\nMovie %d is unavailable right now. Type 'refresh' to retry or 'back'.\n", movieID)
		return true
	}

	fmt.Fprintln(a.out)
	RenderMovie(a.out, detail.movie, detail.rating)
	RenderReviews(a.out, detail.reviews)
	renderHelp(a.out, ViewDetail)
	return true
}

// loadDetail fetches the movie, its reviews and its rating in parallel. Only
// the movie is required; the other two degrade to what the movie embeds.
func (a *App) loadDetail(ctx context.Context, movieID int64) (*movieDetail, error) {
	var d movieDetail
	var reviews []response.ReviewResponse
	reviewsOK := false

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		movie, err := a.api.GetMovie(gctx, movieID)
		if err != nil {
			return err
		}
		d.movie = movie
		return nil
	})

	g.Go(func() error {
		list, err := a.api.ListMovieReviews(gctx, movieID)
		if err != nil {
			a.warnPartial("reviews", movieID, err)
			return nil
		}
		reviews, reviewsOK = list, true
		return nil
	})

	g.Go(func() error {
		rating, err := a.api.GetMovieRating(gctx, movieID)
		if err != nil {
			a.warnPartial("rating", movieID, err)
			return nil
		}
		d.rating = rating
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if reviewsOK {
		d.reviews = reviews
	} else {
		d.reviews = d.movie.Reviews
	}

	return &d, nil
}

func (a *App) warnPartial(part string, movieID int64, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	a.log.Warn("Failed to load movie "+part,
		zap.Int64("movie_id", movieID),
		zap.Error(err),
	)
}

// dispatch runs one command line. It reports true when the user quits.
func (a *App) dispatch(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "q", "quit", "exit":
		return true, nil
	case "?", "h", "help":
		renderHelp(a.out, a.state.View)
		return false, nil
	case "r", "refresh":
		a.state.RefreshToken++
		return false, nil
	case "a", "add":
		a.state.AddMovieOpen = true
		return false, nil
	}

	if a.state.View == ViewDetail {
		switch cmd {
		case "b", "back":
			a.enterView(ctx, ViewList, 0)
			return false, nil
		case "review":
			return false, a.addReview()
		case "d", "delete":
			id, ok := a.argID(args, "review")
			if !ok {
				return false, nil
			}
			return false, a.deleteReview(id)
		}
	} else {
		if id, err := strconv.ParseInt(cmd, 10, 64); err == nil {
			a.enterView(ctx, ViewDetail, id)
			return false, nil
		}

		switch cmd {
		case "o", "open":
			id, ok := a.argID(args, "movie")
			if !ok {
				return false, nil
			}
			a.enterView(ctx, ViewDetail, id)
			return false, nil
		case "d", "delete":
			id, ok := a.argID(args, "movie")
			if !ok {
				return false, nil
			}
			return false, a.deleteMovie(id)
		}
	}

	fmt.Fprintf(a.out, "Unknown command %q\n", cmd)
	renderHelp(a.out, a.state.View)
	return false, nil
}

func (a *App) argID(args []string, what string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Usage: <command> <%s-id>\n", what)
		return 0, false
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid %s id %q: must be an integer\n", what, args[0])
		return 0, false
	}

	return id, true
}

func (a *App) movieTitle(movieID int64) string {
	for _, m := range a.movies {
		if m.ID == movieID {
			return fmt.Sprintf("%q", m.Title)
		}
	}
	return fmt.Sprintf("#%d", movieID)
}

func (a *App) deleteMovie(movieID int64) error {
	ok, err := a.prompt.Confirm(fmt.Sprintf("Delete movie %s and all its reviews?", a.movieTitle(movieID)), false)
	if err != nil || !ok {
		return err
	}

	if err := a.api.DeleteMovie(a.viewCtx, movieID); err != nil {
		alert(a.out, err)
		return nil
	}

	fmt.Fprintln(a.out, "Movie deleted.")
	a.state.RefreshToken++
	return nil
}

func (a *App) deleteReview(reviewID int64) error {
	ok, err := a.prompt.Confirm(fmt.Sprintf("Delete review #%d?", reviewID), false)
	if err != nil || !ok {
		return err
	}

	if err := a.api.DeleteReview(a.viewCtx, reviewID); err != nil {
		alert(a.out, err)
		return nil
	}

	fmt.Fprintln(a.out, "Review deleted.")
	a.state.RefreshToken++
	return nil
}

// addMovie runs the add-movie modal. A failed submit alerts and keeps the
// modal open until the user gives up.
func (a *App) addMovie(ctx context.Context) error {
	modalCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "\n-- Add movie --")

	for a.state.AddMovieOpen {
		req, err := a.readMovie()
		if err != nil {
			a.state.AddMovieOpen = false
			return err
		}

		movie, err := a.api.CreateMovie(modalCtx, req)
		if err != nil {
			alert(a.out, err)
			retry, err := a.prompt.Confirm("Try again?", true)
			if err != nil {
				a.state.AddMovieOpen = false
				return err
			}
			if !retry {
				a.state.AddMovieOpen = false
			}
			continue
		}

		fmt.Fprintf(a.out, "Created movie #%d %s\n", movie.ID, movie.Title)
		a.state.AddMovieOpen = false
		if a.state.View == ViewDetail {
			a.enterView(ctx, ViewList, 0)
		} else {
			a.state.RefreshToken++
		}
	}

	return nil
}

func (a *App) readMovie() (request.MovieRequest, error) {
	var req request.MovieRequest
	var err error

	if req.Title, err = a.prompt.Required("Title"); err != nil {
		return req, err
	}
	if req.Description, err = a.prompt.Required("Description"); err != nil {
		return req, err
	}
	if req.Genre, err = a.prompt.Required("Genre"); err != nil {
		return req, err
	}
	if req.ReleaseYear, err = a.prompt.Int("Release year", 1888, 2100); err != nil {
		return req, err
	}

	return req, nil
}

func (a *App) addReview() error {
	fmt.Fprintln(a.out, "\n-- Add review --")

	for {
		req := request.CreateReviewRequest{MovieID: a.state.SelectedID}
		var err error

		if req.UserName, err = a.prompt.Required("Your name"); err != nil {
			return err
		}
		if req.Rating, err = a.prompt.Int("Rating", 1, 5); err != nil {
			return err
		}
		if req.Comment, err = a.prompt.Required("Comment"); err != nil {
			return err
		}

		if _, err := a.api.CreateReview(a.viewCtx, req); err != nil {
			alert(a.out, err)
			retry, err := a.prompt.Confirm("Try again?", true)
			if err != nil || !retry {
				return err
			}
			continue
		}

		fmt.Fprintln(a.out, "Review added.")
		a.state.RefreshToken++
		return nil
	}
}
