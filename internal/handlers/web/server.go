package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/services/game"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const (
	timeout         = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

//go:embed static
var static embed.FS

// ServerError is a custom error type for web server errors
type ServerError string

// Error implements the error interface
func (e ServerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      ServerError = "config cannot be nil"
	ErrNilGameService ServerError = "game service cannot be nil"
	ErrNilHub         ServerError = "hub cannot be nil"
)

// Config holds the web server's settings and dependencies
type Config struct {
	Game   game.Service
	Hub    *Hub
	Logger *zap.Logger

	Bind   string
	Port   int
	Prefix string

	// TLS is enabled when both are set
	TLSCert string
	TLSKey  string

	// PublicURL is encoded in /qrcode.png; derived from the request when empty
	PublicURL string

	Version string
}

// Server serves the page, the JSON API and the event stream
type Server struct {
	game   game.Service
	hub    *Hub
	logger *zap.Logger

	addr      string
	prefix    string
	tlsCert   string
	tlsKey    string
	publicURL string
	version   string

	router *httprouter.Router
}

// New creates a server with every route registered
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Game == nil {
		return nil, ErrNilGameService
	}
	if cfg.Hub == nil {
		return nil, ErrNilHub
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		game:      cfg.Game,
		hub:       cfg.Hub,
		logger:    logger,
		addr:      net.JoinHostPort(cfg.Bind, strconv.Itoa(cfg.Port)),
		prefix:    strings.TrimSuffix(cfg.Prefix, "/"),
		tlsCert:   cfg.TLSCert,
		tlsKey:    cfg.TLSKey,
		publicURL: cfg.PublicURL,
		version:   cfg.Version,
	}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() error {
	assets, err := fs.Sub(static, "static")
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	mux := httprouter.New()
	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		s.logger.Error("handler panic", zap.String("path", r.URL.Path), zap.Any("panic", v))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}

	p := s.prefix
	mux.GET(p+"/", s.servePage(assets))
	mux.ServeFiles(p+"/static/*filepath", http.FS(assets))
	mux.GET(p+"/healthz", s.serveHealthCheck)
	mux.GET(p+"/version", s.serveVersion)
	mux.GET(p+"/qrcode.png", s.serveQRCode)
	mux.GET(p+"/ws", s.serveEvents)

	mux.GET(p+"/api/state", s.getState)
	mux.POST(p+"/api/spin", s.spin)

	mux.GET(p+"/api/players", s.listPlayers)
	mux.POST(p+"/api/players", s.addPlayer)
	mux.DELETE(p+"/api/players/:name", s.removePlayer)

	mux.GET(p+"/api/drinks", s.listDrinks)
	mux.POST(p+"/api/drinks", s.addDrink)
	mux.DELETE(p+"/api/drinks/:name", s.removeDrink)

	mux.GET(p+"/api/features", s.listFeatures)
	mux.POST(p+"/api/features", s.addFeature)
	mux.DELETE(p+"/api/features/:id", s.removeFeature)
	mux.POST(p+"/api/features/:id/trigger", s.triggerFeature)

	mux.GET(p+"/api/rules", s.listRules)
	mux.POST(p+"/api/rules", s.submitRule)
	mux.POST(p+"/api/rules/dismiss", s.dismissRulePrompt)

	mux.POST(p+"/api/popup/dismiss", s.dismissPopup)

	s.router = mux
	return nil
}

// Handler returns the router with security headers applied
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.securityHeaders(w)
		s.router.ServeHTTP(w, r)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("url", s.scheme()+"://"+s.addr+s.prefix+"/"))

		var err error
		if s.tlsEnabled() {
			err = srv.ListenAndServeTLS(s.tlsCert, s.tlsKey)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func (s *Server) tlsEnabled() bool {
	return s.tlsCert != "" && s.tlsKey != ""
}

func (s *Server) scheme() string {
	if s.tlsEnabled() {
		return "https"
	}
	return "http"
}

func (s *Server) securityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
	w.Header().Set("Cross-Origin-Resource-Policy", "same-site")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; connect-src 'self' ws: wss:")

	if s.tlsEnabled() {
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	}
}
