package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/golazo"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Matches   golazo.MatchService
	Standings golazo.StandingsService
	Teams     golazo.TeamService
	Fichas    golazo.FichaService
	Streams   golazo.StreamService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `name:"base-url" default:"https://www.promiedos.com.ar/" env:"GOLAZO_BASE_URL" help:"Results site root"`
	StreamURL   string        `name:"stream-url" default:"https://rojadirectaenhd.net/" env:"GOLAZO_STREAM_URL" help:"Stream listing site root"`
	Timeout     time.Duration `default:"10s" env:"GOLAZO_TIMEOUT" help:"Upstream fetch timeout"`
	Concurrency int           `short:"c" default:"4" env:"GOLAZO_CONCURRENCY" help:"Concurrent upstream fetches per request"`
	Fetcher     string        `enum:"http,rod" default:"http" env:"GOLAZO_FETCHER" help:"Page fetcher (http or rod)"`
	Retries     int           `default:"0" env:"GOLAZO_RETRIES" help:"Retries for failed upstream fetches"`
	LogLevel    string        `name:"log-level" enum:"debug,info,warn,error" default:"info" env:"GOLAZO_LOG_LEVEL" help:"Log level"`
	LogFormat   string        `name:"log-format" enum:"text,json" default:"text" env:"GOLAZO_LOG_FORMAT" help:"Log format"`

	Serve     ServeCmd     `cmd:"" help:"Serve the JSON API"`
	Results   ResultsCmd   `cmd:"" help:"Print the matches of a day"`
	Standings StandingsCmd `cmd:"" help:"Print a league table"`
	Club      ClubCmd      `cmd:"" help:"Print a club profile"`
	Ficha     FichaCmd     `cmd:"" help:"Print the boxscore of a match"`
	Channels  ChannelsCmd  `cmd:"" help:"Print the stream channel directory"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `default:":5000" env:"GOLAZO_ADDR" help:"Listen address"`
	CORSOrigins []string `name:"cors-origins" default:"*" env:"GOLAZO_CORS_ORIGINS" help:"Allowed CORS origins, comma separated"`
}

// ResultsCmd is the "results" subcommand.
type ResultsCmd struct {
	Day string `arg:"" optional:"" help:"Day path such as 'ayer' or 'manana'; empty for today"`
}

// StandingsCmd is the "standings" subcommand.
type StandingsCmd struct {
	League string `arg:"" help:"League path, e.g. 'primera'"`
}

// ClubCmd is the "club" subcommand.
type ClubCmd struct {
	Name string `arg:"" help:"Club key"`
}

// FichaCmd is the "ficha" subcommand.
type FichaCmd struct {
	ID string `arg:"" help:"Match id"`
}

// ChannelsCmd is the "channels" subcommand.
type ChannelsCmd struct{}
