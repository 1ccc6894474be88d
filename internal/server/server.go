package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/garrettladley/creem/internal/server/handler"
	servermw "github.com/garrettladley/creem/internal/server/middleware"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/xhttp/middleware"
	"github.com/garrettladley/creem/internal/xslog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWebhookPath     = "/creem/webhook"
	DefaultSignatureHeader = "creem-signature"

	shutdownTimeout = 30 * time.Second
)

type Options struct {
	Logger          *slog.Logger
	WebhookPath     string
	SignatureHeader string
	Verifier        servermw.SignatureVerifier
	Service         webhook.Service
}

// NewHandler mounts the webhook endpoint at WebhookPath and at
// WebhookPath/{profile}, plus GET /health.
func NewHandler(opts Options) http.Handler {
	path := strings.TrimRight(opts.WebhookPath, "/")
	if path == "" {
		path = DefaultWebhookPath
	}
	header := opts.SignatureHeader
	if header == "" {
		header = DefaultSignatureHeader
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	webhookHandler := middleware.Chain(
		http.HandlerFunc(handler.NewWebhook(opts.Service).HandleWebhook),
		servermw.VerifyWebhook(opts.Verifier, header),
	)

	mux := http.NewServeMux()
	mux.Handle("POST "+path, webhookHandler)
	mux.Handle("POST "+path+"/{"+servermw.PathValueProfile+"}", webhookHandler)
	mux.HandleFunc("GET /health", handler.HandleHealth)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Logging,
		middleware.SecurityHeaders,
	)
}

type Server struct {
	http   *http.Server
	logger *slog.Logger
}

func New(addr string, h http.Handler, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
	}
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			slog.String("addr", ln.Addr().String()))
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.InfoContext(ctx, "shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.InfoContext(ctx, "server stopped")
		return nil
	})

	return g.Wait()
}
