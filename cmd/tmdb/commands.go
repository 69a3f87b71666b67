package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/filmgraph/tmdb"
)

func newGetMovieCmd() *cobra.Command {
	var withCast bool

	cmd := &cobra.Command{
		Use:   "get-movie <id>",
		Short: "Show a movie by TMDb ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("movie id must be an integer: %q", args[0])
			}
			movie, err := client.GetMovie(cmd.Context(), id)
			if err != nil {
				return err
			}
			printMovie(cmd.OutOrStdout(), movie, withCast)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withCast, "cast", false, "also list the cast")
	return cmd
}

func newSearchMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search-movie <query>",
		Short: "Search movies by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := client.FindMovie(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(movies) == 0 {
				return fmt.Errorf("no result found for %q", args[0])
			}
			for _, m := range movies {
				fmt.Fprintf(cmd.OutOrStdout(), "%8d  %s\n", m.ID, m.Title)
			}
			return nil
		},
	}
}

func newGetPersonCmd() *cobra.Command {
	var withCredits bool

	cmd := &cobra.Command{
		Use:   "get-person <id>",
		Short: "Show a person by TMDb ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("person id must be an integer: %q", args[0])
			}
			person, err := client.GetPerson(cmd.Context(), id)
			if err != nil {
				return err
			}
			printPerson(cmd.OutOrStdout(), person, withCredits)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withCredits, "credits", false, "also list movie credits")
	return cmd
}

func newSearchPersonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search-person <query>",
		Short: "Search people by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := client.FindPerson(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(people) == 0 {
				return fmt.Errorf("no result found for %q", args[0])
			}
			for _, p := range people {
				fmt.Fprintf(cmd.OutOrStdout(), "%8d  %s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}

func newRandomPersonCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "random-person",
		Short: "Pick a random person from the popular listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			person, err := client.GetRandomPopularPerson(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printPerson(cmd.OutOrStdout(), person, false)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 500, "restrict the pick to the N most popular people")
	return cmd
}

func newOverlapMoviesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlap-movies <name> <name> [name...]",
		Short: "Movies shared by all named people's credits",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := client.FindOverlappingMovies(cmd.Context(), args)
			if err != nil {
				return err
			}
			if len(movies) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no shared movies")
				return nil
			}
			for _, m := range movies {
				fmt.Fprintf(cmd.OutOrStdout(), "%8d  %s\n", m.ID, m.Title)
			}
			return nil
		},
	}
}

func newOverlapActorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlap-actors <title> <title> [title...]",
		Short: "Actors shared by all named movies' casts",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actors, err := client.FindOverlappingActors(cmd.Context(), args)
			if err != nil {
				return err
			}
			if len(actors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no shared actors")
				return nil
			}
			for _, p := range actors {
				fmt.Fprintf(cmd.OutOrStdout(), "%8d  %s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}

func printMovie(w io.Writer, m *tmdb.Movie, withCast bool) {
	fmt.Fprintf(w, "Movie #%d: %s\n", m.ID, m.Title)
	if withCast {
		for _, p := range m.Cast {
			fmt.Fprintf(w, "    %8d  %s\n", p.ID, p.Name)
		}
	}
}

func printPerson(w io.Writer, p *tmdb.Person, withCredits bool) {
	fmt.Fprintf(w, "Person #%d: %s\n", p.ID, p.Name)
	if p.Biography != "" {
		fmt.Fprintf(w, "  %s\n", p.Biography)
	}
	if withCredits {
		for _, m := range p.MovieCredits {
			fmt.Fprintf(w, "    %8d  %s\n", m.ID, m.Title)
		}
	}
}
