package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/golazo"
	golazohttp "github.com/fwojciec/golazo/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := golazohttp.NewServer(
		golazohttp.WithAccessLogger(deps.Logger),
		golazohttp.WithCORSOrigins(c.CORSOrigins...),
	)
	s.Addr = c.Addr
	s.MatchService = deps.Matches
	s.StandingsService = deps.Standings
	s.TeamService = deps.Teams
	s.FichaService = deps.Fichas
	s.StreamService = deps.Streams

	if err := s.Open(); err != nil {
		return fmt.Errorf("listen on %s: %w", c.Addr, err)
	}
	deps.Logger.Info("listening", "url", s.URL())

	<-deps.Ctx.Done()
	deps.Logger.Info("shutting down")
	return s.Close()
}

// Run executes the results command.
func (c *ResultsCmd) Run(deps *Dependencies) error {
	matches, err := deps.Matches.FindMatches(deps.Ctx, c.Day)
	if err != nil {
		return report(deps.Stderr, err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(deps.Stderr, "No matches found.")
		return nil
	}
	return printJSON(deps.Stdout, matches)
}

// Run executes the standings command.
func (c *StandingsCmd) Run(deps *Dependencies) error {
	rows, err := deps.Standings.FindStandings(deps.Ctx, c.League)
	if err != nil {
		return report(deps.Stderr, err)
	}
	return printJSON(deps.Stdout, rows)
}

// Run executes the club command.
func (c *ClubCmd) Run(deps *Dependencies) error {
	details, err := deps.Teams.FindTeamDetails(deps.Ctx, c.Name)
	if err != nil {
		return report(deps.Stderr, err)
	}
	return printJSON(deps.Stdout, details)
}

// Run executes the ficha command.
func (c *FichaCmd) Run(deps *Dependencies) error {
	ficha, err := deps.Fichas.FindFicha(deps.Ctx, c.ID)
	if err != nil {
		return report(deps.Stderr, err)
	}
	return printJSON(deps.Stdout, ficha)
}

// Run executes the channels command.
func (c *ChannelsCmd) Run(deps *Dependencies) error {
	return printJSON(deps.Stdout, golazo.Channels())
}

func report(w io.Writer, err error) error {
	fmt.Fprintf(w, "error: %s\n", golazo.ErrorMessage(err))
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
