package types

// ------------------------------
// Response envelopes
// ------------------------------

// MovieSearchResponse wraps the search/movie result list.
type MovieSearchResponse struct {
	Results []Movie `json:"results"`
}

// PersonSearchResponse wraps the search/person result list.
type PersonSearchResponse struct {
	Results []Person `json:"results"`
}

// PopularPeoplePage is one page of the person/popular listing.
type PopularPeoplePage struct {
	Page         int      `json:"page"`
	Results      []Person `json:"results"`
	TotalResults int      `json:"total_results"`
	TotalPages   int      `json:"total_pages"`
}
