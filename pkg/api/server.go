package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/s33d1ing/verskit/pkg/logging"
	"github.com/s33d1ing/verskit/pkg/server"
)

const (
	name           = "verskitd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/s33d1ing/verskit/pkg/api.buildVersion=1.0.0"
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, buildVersion)
	slog.Info("starting",
		"name", name,
		"version", buildVersion,
		"commit", commit,
		"date", date,
	)

	// Environment-driven config, shared with the handler batch bound
	cfg := server.NewConfig()

	h := NewHandler(WithMaxBatch(cfg.MaxBatchSize))

	r := map[string]http.HandlerFunc{
		"/v1/parse":   h.HandleParse,
		"/v1/compare": h.HandleCompare,
		"/v1/sort":    h.HandleSort,
	}

	// Create and run server
	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(buildVersion),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
