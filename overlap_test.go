package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/filmgraph/tmdb/internal/fetchqueue"
	"github.com/filmgraph/tmdb/internal/job"
)

func TestCommonMovies(t *testing.T) {
	t.Parallel()

	people := []Person{
		{ID: 1, MovieCredits: []Movie{{ID: 10, Title: "Shared"}, {ID: 11, Title: "Solo A"}}},
		{ID: 2, MovieCredits: []Movie{{ID: 12, Title: "Solo B"}, {ID: 10, Title: "Shared"}}},
	}

	common := CommonMovies(people)
	if len(common) != 1 || common[0].ID != 10 {
		t.Fatalf("common = %+v, want single movie 10", common)
	}
}

func TestCommonMoviesEmptyInput(t *testing.T) {
	t.Parallel()

	if got := CommonMovies(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
}

func TestCommonMoviesSinglePerson(t *testing.T) {
	t.Parallel()

	people := []Person{
		{ID: 1, MovieCredits: []Movie{{ID: 10}, {ID: 11}}},
	}
	if got := CommonMovies(people); len(got) != 2 {
		t.Fatalf("single person should keep all credits, got %+v", got)
	}
}

func TestCommonCast(t *testing.T) {
	t.Parallel()

	movies := []Movie{
		{ID: 10, Cast: []Person{{ID: 7, Name: "Shared"}, {ID: 8}}},
		{ID: 11, Cast: []Person{{ID: 9}, {ID: 7, Name: "Shared"}}},
		{ID: 12, Cast: []Person{{ID: 7, Name: "Shared"}}},
	}

	common := CommonCast(movies)
	if len(common) != 1 || common[0].ID != 7 {
		t.Fatalf("common = %+v, want single person 7", common)
	}
}

// overlapServer serves a tiny slice of the API: two movies sharing actor 7,
// searchable by title, plus person detail records for hydration.
func overlapServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/3/search/movie", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "alpha":
			fmt.Fprint(w, `{"results":[{"id":1,"original_title":"Alpha"}]}`)
		case "beta":
			fmt.Fprint(w, `{"results":[{"id":2,"original_title":"Beta"}]}`)
		default:
			fmt.Fprint(w, `{"results":[]}`)
		}
	})
	mux.HandleFunc("/3/search/person", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "shared actor":
			fmt.Fprint(w, `{"results":[{"id":7,"name":"Shared Actor"}]}`)
		default:
			fmt.Fprint(w, `{"results":[]}`)
		}
	})
	mux.HandleFunc("/3/movie/1", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id":1,"original_title":"Alpha","credits":{"cast":[{"id":7,"name":"Shared Actor"},{"id":8,"name":"Only Alpha"}]}}`)
	})
	mux.HandleFunc("/3/movie/2", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id":2,"original_title":"Beta","credits":{"cast":[{"id":9,"name":"Only Beta"},{"id":7,"name":"Shared Actor"}]}}`)
	})
	mux.HandleFunc("/3/person/7", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id":7,"name":"Shared Actor","biography":"long bio","movie_credits":{"cast":[{"id":1,"original_title":"Alpha"},{"id":2,"original_title":"Beta"}]}}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{WithServiceRoot(srv.URL + "/3/")}, opts...)
	c := New("token", opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestFindOverlappingActors(t *testing.T) {
	t.Parallel()

	srv := overlapServer(t)
	c := newTestClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	actors, err := c.FindOverlappingActors(ctx, []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("FindOverlappingActors: %v", err)
	}
	if len(actors) != 1 {
		t.Fatalf("got %d actors, want 1", len(actors))
	}
	if actors[0].ID != 7 || actors[0].Biography != "long bio" {
		t.Fatalf("actor not hydrated: %+v", actors[0])
	}
}

func TestFindOverlappingActorsInline(t *testing.T) {
	t.Parallel()

	srv := overlapServer(t)
	c := newTestClient(t, srv, WithoutExecutor())

	actors, err := c.FindOverlappingActors(context.Background(), []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("FindOverlappingActors: %v", err)
	}
	if len(actors) != 1 || actors[0].Biography != "long bio" {
		t.Fatalf("serial hydration failed: %+v", actors)
	}
}

func TestFindOverlappingMoviesNoResult(t *testing.T) {
	t.Parallel()

	srv := overlapServer(t)
	c := newTestClient(t, srv, WithoutExecutor())

	_, err := c.FindOverlappingMovies(context.Background(), []string{"nobody here"})
	if err == nil {
		t.Fatal("expected error for empty search result")
	}
	if !strings.Contains(err.Error(), `"nobody here"`) {
		t.Fatalf("error should name the query, got: %v", err)
	}
}

func TestFindOverlappingMovies(t *testing.T) {
	t.Parallel()

	srv := overlapServer(t)
	c := newTestClient(t, srv, WithoutExecutor())

	movies, err := c.FindOverlappingMovies(context.Background(), []string{"shared actor"})
	if err != nil {
		t.Fatalf("FindOverlappingMovies: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[0].ID != 1 || movies[1].ID != 2 {
		t.Fatalf("unexpected movie order: %+v", movies)
	}
}

// fullExecutor rejects every submission with a queue-full error.
type fullExecutor struct{}

func (fullExecutor) Submit(context.Context, string, fetchqueue.Job) error {
	return &fetchqueue.QueueFullError{Shard: 0, Length: 64, Capacity: 64}
}
func (fullExecutor) Barrier(context.Context, string) error { return nil }
func (fullExecutor) Stop()                                 {}

func TestOverlapBackPressure(t *testing.T) {
	t.Parallel()

	srv := overlapServer(t)
	c := newTestClient(t, srv, WithoutExecutor())
	c.exec = fullExecutor{}

	people := []Person{
		{ID: 1, MovieCredits: []Movie{{ID: 10}}},
		{ID: 2, MovieCredits: []Movie{{ID: 10}}},
	}
	_, err := c.OverlappingMovies(context.Background(), people)
	if !IsBackPressure(err) {
		t.Fatalf("expected back-pressure error, got: %v", err)
	}
}

func TestHydrationFailureCountsUnderKeyShard(t *testing.T) {
	srv := overlapServer(t)
	c := newTestClient(t, srv, WithoutExecutor())

	// movie/999 is not served, so hydration fails with not-found. The
	// failure counter must use the same shard label the enqueue counter
	// derives from the job key.
	label := job.ShardLabel("movie/999")
	before := testutil.ToFloat64(hydrationFailedTotal.WithLabelValues(label))

	people := []Person{
		{ID: 1, MovieCredits: []Movie{{ID: 999}}},
		{ID: 2, MovieCredits: []Movie{{ID: 999}}},
	}
	_, err := c.OverlappingMovies(context.Background(), people)
	if err == nil {
		t.Fatal("expected hydration error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got: %v", err)
	}
	if !strings.Contains(err.Error(), "movie/999") {
		t.Fatalf("error should name the failing key, got: %v", err)
	}

	after := testutil.ToFloat64(hydrationFailedTotal.WithLabelValues(label))
	if after-before != 1 {
		t.Fatalf("failure counter delta = %v, want 1", after-before)
	}
}

func TestOverlappingMoviesEmptyCommon(t *testing.T) {
	t.Parallel()

	srv := overlapServer(t)
	c := newTestClient(t, srv, WithoutExecutor())

	people := []Person{
		{ID: 1, MovieCredits: []Movie{{ID: 10}}},
		{ID: 2, MovieCredits: []Movie{{ID: 11}}},
	}
	movies, err := c.OverlappingMovies(context.Background(), people)
	if err != nil {
		t.Fatalf("OverlappingMovies: %v", err)
	}
	if len(movies) != 0 {
		t.Fatalf("expected no common movies, got %+v", movies)
	}
}
