package types

import "encoding/json"

// imageBase is the TMDb image CDN prefix at the width the SDK serves.
const imageBase = "https://image.tmdb.org/t/p/w185"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Movie represents a movie.
//
// Identity is the TMDb ID; two Movie values are the same movie when their
// IDs match, regardless of how much detail each carries.
type Movie struct {
	ID         int
	Title      string
	PosterPath string
	Cast       []Person
}

// movieDocument mirrors the TMDb wire format for a movie record.
type movieDocument struct {
	ID            int    `json:"id"`
	OriginalTitle string `json:"original_title"`
	PosterPath    string `json:"poster_path"`
	Credits       struct {
		Cast []Person `json:"cast"`
	} `json:"credits"`
}

// UnmarshalJSON maps the TMDb document shape (original_title, credits.cast)
// onto the flat Movie struct.
func (m *Movie) UnmarshalJSON(data []byte) error {
	var doc movieDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	m.ID = doc.ID
	m.Title = doc.OriginalTitle
	m.PosterPath = doc.PosterPath
	m.Cast = doc.Credits.Cast
	return nil
}

// ImageURL returns the full poster URL, or "" when the movie has no poster.
func (m *Movie) ImageURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return imageBase + m.PosterPath
}

// InCast reports whether the person appears in the movie's cast.
func (m *Movie) InCast(p *Person) bool {
	for i := range m.Cast {
		if m.Cast[i].ID == p.ID {
			return true
		}
	}
	return false
}

// Person represents a person.
type Person struct {
	ID           int
	Name         string
	Biography    string
	ProfilePath  string
	MovieCredits []Movie
}

// personDocument mirrors the TMDb wire format for a person record.
type personDocument struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Biography    string `json:"biography"`
	ProfilePath  string `json:"profile_path"`
	MovieCredits struct {
		Cast []Movie `json:"cast"`
	} `json:"movie_credits"`
}

// UnmarshalJSON maps the TMDb document shape (movie_credits.cast) onto the
// flat Person struct.
func (p *Person) UnmarshalJSON(data []byte) error {
	var doc personDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	p.ID = doc.ID
	p.Name = doc.Name
	p.Biography = doc.Biography
	p.ProfilePath = doc.ProfilePath
	p.MovieCredits = doc.MovieCredits.Cast
	return nil
}

// ImageURL returns the full profile image URL, or "" when the person has no
// profile image.
func (p *Person) ImageURL() string {
	if p.ProfilePath == "" {
		return ""
	}
	return imageBase + p.ProfilePath
}

// InCredits reports whether the movie appears in the person's credits.
func (p *Person) InCredits(m *Movie) bool {
	for i := range p.MovieCredits {
		if p.MovieCredits[i].ID == m.ID {
			return true
		}
	}
	return false
}
