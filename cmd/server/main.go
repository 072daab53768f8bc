package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/AmmannChristian/pwstrength/internal/config"
	"github.com/AmmannChristian/pwstrength/internal/middleware"
	"github.com/AmmannChristian/pwstrength/internal/service"
	pb "github.com/AmmannChristian/pwstrength/pkg/pb"
)

const (
	version = "1.0.0"
)

type server struct {
	config *config.Config
	mux    *http.ServeMux
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func run() error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging(cfg.LogLevel)

	log.Info().
		Str("version", version).
		Int("http_port", cfg.ServerPort).
		Int("grpc_port", cfg.GRPCPort).
		Bool("grpc_enabled", cfg.GRPCEnabled).
		Bool("tls_enabled", cfg.TLSEnabled).
		Int("max_password_length", cfg.MaxPasswordLength).
		Str("special_chars", cfg.SpecialChars).
		Msg("starting password strength server")

	srv := &server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	// Channel to listen for errors coming from the listeners
	serverErrors := make(chan error, 2)

	// Optional gRPC server
	var grpcServer *grpc.Server
	var grpcListener net.Listener
	var healthServer *health.Server
	if cfg.GRPCEnabled {
		grpcServer, healthServer, err = newGRPCServer(cfg)
		if err != nil {
			return err
		}

		grpcListener, err = net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("failed to create gRPC listener: %w", err)
		}

		go func() {
			log.Info().Str("addr", grpcListener.Addr().String()).Msg("gRPC server listening")
			if err := grpcServer.Serve(grpcListener); err != nil && err != grpc.ErrServerStopped {
				serverErrors <- err
			}
		}()
	}

	// Channel to listen for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Optional metrics/health server on HTTP
	var httpServer *http.Server
	if cfg.MetricsEnabled {
		srv.registerRoutes()
		httpServer = &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      srv.mux,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		}

		go func() {
			log.Info().Str("addr", httpServer.Addr).Msg("HTTP metrics server listening")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErrors <- err
			}
		}()
	}

	// Block until we receive a signal or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutdown requested")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if httpServer != nil {
			if err := httpServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				httpServer.Close()
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
		}

		if grpcServer != nil {
			healthServer.Shutdown()
			grpcServer.GracefulStop()
			if grpcListener != nil {
				_ = grpcListener.Close()
			}
		}

		log.Info().Msg("server stopped gracefully")
	}

	return nil
}

// loadDotEnv loads the given env files (".env" by default) without
// overriding variables that are already set. Missing files are skipped.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// newGRPCServer builds the gRPC server with the strength service, health
// checking and reflection registered.
func newGRPCServer(cfg *config.Config) (*grpc.Server, *health.Server, error) {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			middleware.UnaryRequestIDInterceptor(),
			loggingInterceptor,
			timeoutInterceptor(cfg.Timeout),
		),
	}
	if cfg.TLSEnabled {
		creds, err := loadTLSCredentials(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load TLS credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	grpcServer := grpc.NewServer(opts...)

	svc := service.NewService(cfg.SpecialChars, cfg.MaxPasswordLength)
	pb.RegisterPasswordStrengthServiceServer(grpcServer, service.NewGRPCServer(svc))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	return grpcServer, healthServer, nil
}

func (s *server) registerRoutes() {
	s.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		health := map[string]interface{}{
			"status":       "healthy",
			"version":      version,
			"grpc_enabled": s.config.GRPCEnabled,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})

	s.mux.Handle("/metrics", promhttp.Handler())
}

// setupLogging configures zerolog for structured output.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loggingInterceptor logs gRPC requests with timing and request ID. Request
// payloads are never logged since they carry passwords.
func loggingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	duration := time.Since(start)

	requestID := middleware.GetRequestID(ctx)

	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", info.FullMethod).
			Dur("duration", duration).
			Msg("gRPC request failed")
		return resp, err
	}

	log.Info().
		Str("request_id", requestID).
		Str("method", info.FullMethod).
		Dur("duration", duration).
		Msg("gRPC request completed")

	return resp, nil
}

// timeoutInterceptor bounds each unary call by the configured timeout.
func timeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if timeout <= 0 {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return handler(ctx, req)
	}
}
