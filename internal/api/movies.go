package api

import (
	"context"
	"strconv"

	"github.com/filmgraph/tmdb/core"
	"github.com/filmgraph/tmdb/internal/types"
)

// GetMovie retrieves a movie with its credits.
func GetMovie(ctx context.Context, c Caller, movieID int) (*types.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(movieID, "movieID"); err != nil {
		return nil, err
	}
	url, err := c.buildURL(
		"movie/{movie_id}",
		map[string]string{"movie_id": strconv.Itoa(movieID)},
		core.Params{}.Set("append_to_response", "credits"),
	)
	if err != nil {
		return nil, err
	}
	var m types.Movie
	if err := getJSON(ctx, c, "get movie", url, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindMovie searches movies by title.
func FindMovie(ctx context.Context, c Caller, query string) ([]types.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateQuery(query); err != nil {
		return nil, err
	}
	url, err := c.buildURL(
		"search/movie",
		nil,
		core.Params{}.Set("query", query).Set("include_adult", "false"),
	)
	if err != nil {
		return nil, err
	}
	var sr types.MovieSearchResponse
	if err := getJSON(ctx, c, "find movie", url, &sr); err != nil {
		return nil, err
	}
	return sr.Results, nil
}
