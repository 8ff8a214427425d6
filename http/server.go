package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/golazo"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ShutdownTimeout bounds how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server exposes the golazo services as JSON routes.
// Services must be set before the first request.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router
	logger *slog.Logger

	// Addr is the listen address, e.g. ":5000".
	Addr string

	MatchService     golazo.MatchService
	StandingsService golazo.StandingsService
	TeamService      golazo.TeamService
	FichaService     golazo.FichaService
	StreamService    golazo.StreamService

	// StreamPaths are the channel pages read by /video-frames and /scrape-links.
	StreamPaths []string
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	logger      *slog.Logger
	corsOrigins []string
}

// WithAccessLogger sets the logger for the access log and handler errors.
// Defaults to a logger that discards everything.
func WithAccessLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = logger
	}
}

// WithCORSOrigins sets the allowed CORS origins. Defaults to every origin.
func WithCORSOrigins(origins ...string) ServerOption {
	return func(c *serverConfig) {
		c.corsOrigins = origins
	}
}

// NewServer creates a Server with every route registered.
func NewServer(opts ...ServerOption) *Server {
	cfg := serverConfig{
		logger:      slog.New(slog.DiscardHandler),
		corsOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{
		server:      &http.Server{ReadHeaderTimeout: 10 * time.Second},
		router:      chi.NewRouter(),
		logger:      cfg.logger,
		StreamPaths: golazo.DefaultStreamPaths(),
	}
	s.server.Handler = s.router

	s.router.Use(accessLog(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match", requestIDHeader},
		ExposedHeaders: []string{"ETag", requestIDHeader},
		MaxAge:         300,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/results", s.handleResults)
	s.router.Get("/results/*", s.handleResults)
	s.router.Get("/standings/{league}", s.handleStandings)
	s.router.Get("/club={name}", s.handleClub)
	s.router.Get("/ficha={matchID}", s.handleFicha)
	s.router.Get("/cards", s.handleCards("No se encontraron tarjetas en la página"))
	s.router.Get("/card-containers", s.handleCards("No se encontraron contenedores de tarjetas en la página"))
	s.router.Get("/video-frames", s.handleVideoFrames)
	s.router.Get("/scrape-links", s.handleScrapeLinks)
	s.router.Get("/canales", s.handleChannels)

	return s
}

// ServeHTTP lets the Server be mounted or tested without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open starts listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("serve", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of a running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	matches, err := s.MatchService.FindMatches(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "No se pudo acceder a la página", err)
		return
	}
	if len(matches) == 0 {
		s.writeError(w, r, http.StatusNotFound, "No se encontraron partidos en la página", nil)
		return
	}
	s.writeJSON(w, r, http.StatusOK, matches)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	rows, err := s.StandingsService.FindStandings(r.Context(), chi.URLParam(r, "league"))
	if err != nil || len(rows) == 0 {
		s.writeError(w, r, http.StatusNotFound, "No se encontraron posiciones para la liga solicitada", err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, rows)
}

func (s *Server) handleClub(w http.ResponseWriter, r *http.Request) {
	details, err := s.TeamService.FindTeamDetails(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "Failed to fetch team details", err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, details)
}

func (s *Server) handleFicha(w http.ResponseWriter, r *http.Request) {
	ficha, err := s.FichaService.FindFicha(r.Context(), chi.URLParam(r, "matchID"))
	switch golazo.ErrorCode(err) {
	case "":
		s.writeJSON(w, r, http.StatusOK, ficha)
	case golazo.ENOTFOUND:
		s.writeError(w, r, http.StatusNotFound, "No se encontró el contenido entre 'usoficha' y 'ficha-estadisticas'", err)
	default:
		s.writeError(w, r, http.StatusInternalServerError, "No se pudo acceder a la página del partido", err)
	}
}

func (s *Server) handleCards(emptyMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := s.StreamService.FindStreamCards(r.Context())
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, "No se pudo acceder a la página", err)
			return
		}
		if len(cards) == 0 {
			s.writeError(w, r, http.StatusNotFound, emptyMessage, nil)
			return
		}
		s.writeJSON(w, r, http.StatusOK, cards)
	}
}

func (s *Server) handleVideoFrames(w http.ResponseWriter, r *http.Request) {
	frames, err := s.StreamService.FindVideoFrames(r.Context(), s.StreamPaths)
	if err != nil || len(frames) == 0 {
		s.writeError(w, r, http.StatusNotFound, "No se encontró el reproductor de video en las URLs proporcionadas", err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, frames)
}

func (s *Server) handleScrapeLinks(w http.ResponseWriter, r *http.Request) {
	excerpts, err := s.StreamService.FindPageExcerpts(r.Context(), s.StreamPaths)
	if err != nil || len(excerpts) == 0 {
		s.writeError(w, r, http.StatusNotFound, "No se pudo obtener datos de las URLs proporcionadas", err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, excerpts)
}

func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, channelDirectory(golazo.Channels()))
}

// channelDirectory encodes channels as a name-to-URL object that keeps
// display order.
type channelDirectory []golazo.Channel

func (d channelDirectory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		url, err := json.Marshal(c.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(url)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request failed",
			"request_id", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"code", golazo.ErrorCode(err),
			"err", err,
		)
	}
	s.writeJSON(w, r, status, errorResponse{Error: message})
}

// writeJSON encodes v with an ETag derived from the body. A successful
// response whose ETag matches If-None-Match is answered with 304.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "err", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
	w.Header().Set("ETag", etag)
	if status == http.StatusOK && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
