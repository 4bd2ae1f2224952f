package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"booking-scheduler/cmd/bootstrap"
	"booking-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const (
	readHeaderTimeout = 5 * time.Second
	stopTimeout       = 15 * time.Second
)

func init() {
	// Release mode unless explicitly overridden, so a missing variable never exposes debug output.
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
	gin.EnableJsonDecoderDisallowUnknownFields()
}

// @title           booking-scheduler
// @version         1.0
// @description     Appointment booking and resource scheduling for clinics and spas.
// @description     Practitioners and rooms are reserved together without double booking.

// @BasePath  /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// bind here so a taken port fails startup instead of a background goroutine
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped with error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Invoke(startServer),
		fx.StopTimeout(stopTimeout),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()
	slog.Info("shutdown requested", "signal", sig.Signal)

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	if err := app.Stop(ctx); err != nil {
		// in-flight requests or queued notifications may have been cut off
		slog.Error("failed to stop application cleanly", "error", err)
	}
	cancel()

	slog.Info("application stopped")
	os.Exit(sig.ExitCode)
}
