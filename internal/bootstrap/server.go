package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cortesec-admin/internal/audit"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// AuditRecorder is the part of *audit.Recorder the server drives on exit.
type AuditRecorder interface {
	Log(e audit.Event)
	Close(ctx context.Context) error
}

// StartHTTPServer serves handler until SIGINT/SIGTERM, then stops taking
// requests, waits for in-flight ones and flushes the audit queue.
func StartHTTPServer(handler http.Handler, cfg ServerConfig, recorder AuditRecorder) {
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		zap.L().Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	zap.L().Info("Shutdown signal received", zap.String("signal", sig.String()))
	Shutdown(server, recorder, sig.String())
}

// Shutdown stops server and then closes the recorder, sharing one timeout.
func Shutdown(server *http.Server, recorder AuditRecorder, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	} else {
		zap.L().Info("Server exited gracefully")
	}

	if recorder == nil {
		return
	}
	recorder.Log(audit.Event{
		Tipo:    audit.EventCustom,
		Accion:  "SERVER_SHUTDOWN",
		Detalle: map[string]any{"signal": reason},
	})
	if err := recorder.Close(ctx); err != nil {
		zap.L().Warn("audit queue not fully flushed on exit", zap.Error(err))
	}
}
