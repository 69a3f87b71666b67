package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/filmgraph/tmdb/core"
	"github.com/filmgraph/tmdb/internal/types"
)

// GetPerson retrieves a person with their movie credits.
func GetPerson(ctx context.Context, c Caller, personID int) (*types.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(personID, "personID"); err != nil {
		return nil, err
	}
	url, err := c.buildURL(
		"person/{person_id}",
		map[string]string{"person_id": strconv.Itoa(personID)},
		core.Params{}.Set("append_to_response", "movie_credits"),
	)
	if err != nil {
		return nil, err
	}
	var p types.Person
	if err := getJSON(ctx, c, "get person", url, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPerson searches people by name.
func FindPerson(ctx context.Context, c Caller, query string) ([]types.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateQuery(query); err != nil {
		return nil, err
	}
	url, err := c.buildURL(
		"search/person",
		nil,
		core.Params{}.Set("query", query).Set("include_adult", "false"),
	)
	if err != nil {
		return nil, err
	}
	var sr types.PersonSearchResponse
	if err := getJSON(ctx, c, "find person", url, &sr); err != nil {
		return nil, err
	}
	return sr.Results, nil
}

// PopularPeople retrieves one page of the popular-person listing.
func PopularPeople(ctx context.Context, c Caller, page int) (*types.PopularPeoplePage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(page, "page"); err != nil {
		return nil, err
	}
	url, err := c.buildURL(
		"person/popular",
		nil,
		core.Params{}.Set("page", strconv.Itoa(page)),
	)
	if err != nil {
		return nil, err
	}
	var pg types.PopularPeoplePage
	if err := getJSON(ctx, c, "popular people", url, &pg); err != nil {
		return nil, err
	}
	return &pg, nil
}

// personDetails retrieves the bare person record (biography included, no
// credit append).
func personDetails(ctx context.Context, c Caller, personID int) (*types.Person, error) {
	url, err := c.buildURL(
		"person/{person_id}",
		map[string]string{"person_id": strconv.Itoa(personID)},
		nil,
	)
	if err != nil {
		return nil, err
	}
	var p types.Person
	if err := getJSON(ctx, c, "person details", url, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// RandomPopularPerson picks a uniformly random person among the first limit
// entries of the popular listing and returns their full record. pick is the
// random source, called as pick(n) for a value in [0, n).
func RandomPopularPerson(ctx context.Context, c Caller, limit int, pick func(n int) int) (*types.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be a positive integer")
	}

	first, err := PopularPeople(ctx, c, 1)
	if err != nil {
		return nil, err
	}
	perPage := len(first.Results)
	n := first.TotalResults
	if limit < n {
		n = limit
	}
	if n <= 0 || perPage == 0 {
		return nil, fmt.Errorf("no popular people available")
	}

	index := pick(n)
	page := first
	if pageNo := index/perPage + 1; pageNo > 1 {
		page, err = PopularPeople(ctx, c, pageNo)
		if err != nil {
			return nil, err
		}
	}
	pos := index % perPage
	if pos >= len(page.Results) {
		return nil, fmt.Errorf("popular listing shorter than reported (index %d)", index)
	}
	return personDetails(ctx, c, page.Results[pos].ID)
}
