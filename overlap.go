package tmdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/filmgraph/tmdb/internal/api"
	"github.com/filmgraph/tmdb/internal/fetchqueue"
	"github.com/filmgraph/tmdb/internal/job"
	"github.com/filmgraph/tmdb/internal/types"
)

// --------------------------------------------------------------------
// Pure intersection helpers
// --------------------------------------------------------------------

// CommonMovies returns the movies that appear in every person's credits,
// in the order they appear in the first person's credits. Search results
// carry shallow movies (id and title only); use OverlappingMovies to get
// full records.
func CommonMovies(people []Person) []Movie {
	if len(people) == 0 {
		return nil
	}
	var common []Movie
	for _, m := range people[0].MovieCredits {
		inAll := true
		for _, p := range people[1:] {
			if !p.InCredits(&m) {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, m)
		}
	}
	return common
}

// CommonCast returns the people credited in every movie, in the order they
// appear in the first movie's cast.
func CommonCast(movies []Movie) []Person {
	if len(movies) == 0 {
		return nil
	}
	var common []Person
	for _, p := range movies[0].Cast {
		inAll := true
		for _, m := range movies[1:] {
			if !m.InCast(&p) {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, p)
		}
	}
	return common
}

// --------------------------------------------------------------------
// Hydrating overlap queries
// --------------------------------------------------------------------

// OverlappingMovies computes the movies shared by all people's credits and
// hydrates each into a full record via the fetch executor.
func (c *Client) OverlappingMovies(ctx context.Context, people []Person) ([]Movie, error) {
	common := CommonMovies(people)
	return c.hydrateMovies(ctx, common)
}

// OverlappingActors computes the cast shared by all movies and hydrates
// each person into a full record via the fetch executor.
func (c *Client) OverlappingActors(ctx context.Context, movies []Movie) ([]Person, error) {
	common := CommonCast(movies)
	return c.hydratePeople(ctx, common)
}

// FindOverlappingMovies resolves each name to its top search hit and returns
// the movies all of them share credits on.
func (c *Client) FindOverlappingMovies(ctx context.Context, names []string) ([]Movie, error) {
	people := make([]Person, 0, len(names))
	for _, name := range names {
		hits, err := c.FindPerson(ctx, name)
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			return nil, fmt.Errorf("no result found for %q", name)
		}
		p, err := c.GetPerson(ctx, hits[0].ID)
		if err != nil {
			return nil, err
		}
		people = append(people, *p)
	}
	return c.OverlappingMovies(ctx, people)
}

// FindOverlappingActors resolves each title to its top search hit and
// returns the people all of them share in their cast.
func (c *Client) FindOverlappingActors(ctx context.Context, titles []string) ([]Person, error) {
	movies := make([]Movie, 0, len(titles))
	for _, title := range titles {
		hits, err := c.FindMovie(ctx, title)
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			return nil, fmt.Errorf("no result found for %q", title)
		}
		m, err := c.GetMovie(ctx, hits[0].ID)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return c.OverlappingActors(ctx, movies)
}

// --------------------------------------------------------------------
// Executor-backed hydration
// --------------------------------------------------------------------

// hydrateMovies fetches the full record for each shallow movie. Jobs fan
// out across executor shards keyed by resource, then a per-key barrier
// waits for completion before results are read.
func (c *Client) hydrateMovies(ctx context.Context, shallow []Movie) ([]Movie, error) {
	if len(shallow) == 0 {
		return nil, nil
	}

	full := make([]*types.Movie, len(shallow))
	errs := make([]error, len(shallow))
	keys := make([]string, len(shallow))

	for i, m := range shallow {
		i, id := i, m.ID
		keys[i] = fmt.Sprintf("movie/%d", id)
		j := job.New(func(jctx context.Context) error {
			got, err := api.GetMovie(jctx, c.hydrationCaller(), id)
			full[i], errs[i] = got, err
			return err
		})
		if err := c.submit(ctx, keys[i], j); err != nil {
			return nil, err
		}
	}
	if err := c.await(ctx, keys); err != nil {
		return nil, err
	}

	out := make([]Movie, len(shallow))
	if err := collectHydrationErr(keys, errs); err != nil {
		return nil, err
	}
	for i := range shallow {
		out[i] = *full[i]
	}
	return out, nil
}

// hydratePeople is the person-side counterpart of hydrateMovies.
func (c *Client) hydratePeople(ctx context.Context, shallow []Person) ([]Person, error) {
	if len(shallow) == 0 {
		return nil, nil
	}

	full := make([]*types.Person, len(shallow))
	errs := make([]error, len(shallow))
	keys := make([]string, len(shallow))

	for i, p := range shallow {
		i, id := i, p.ID
		keys[i] = fmt.Sprintf("person/%d", id)
		j := job.New(func(jctx context.Context) error {
			got, err := api.GetPerson(jctx, c.hydrationCaller(), id)
			full[i], errs[i] = got, err
			return err
		})
		if err := c.submit(ctx, keys[i], j); err != nil {
			return nil, err
		}
	}
	if err := c.await(ctx, keys); err != nil {
		return nil, err
	}

	out := make([]Person, len(shallow))
	if err := collectHydrationErr(keys, errs); err != nil {
		return nil, err
	}
	for i := range shallow {
		out[i] = *full[i]
	}
	return out, nil
}

// collectHydrationErr counts every failed fetch under its key's shard label
// (the same domain the enqueue counter uses) and returns the first failure.
func collectHydrationErr(keys []string, errs []error) error {
	var first error
	for i, err := range errs {
		if err == nil {
			continue
		}
		hydrationFailedTotal.WithLabelValues(job.ShardLabel(keys[i])).Inc()
		if first == nil {
			first = fmt.Errorf("hydrate %s: %w", keys[i], err)
		}
	}
	return first
}

// submit enqueues a hydration job, translating queue-full into the public
// back-pressure error.
func (c *Client) submit(ctx context.Context, key string, j fetchqueue.Job) error {
	if err := c.exec.Submit(ctx, key, j); err != nil {
		return translateQueueErr(err, key)
	}
	hydrationsEnqueuedTotal.WithLabelValues(job.ShardLabel(key)).Inc()
	return nil
}

// await blocks until every submitted key's shard has drained past our jobs.
func (c *Client) await(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := c.exec.Barrier(ctx, key); err != nil {
			return translateQueueErr(err, key)
		}
	}
	return nil
}

func translateQueueErr(err error, key string) error {
	var qf *fetchqueue.QueueFullError
	if errors.As(err, &qf) {
		return fmt.Errorf("%w: %s", ErrBackPressure, key)
	}
	return err
}
