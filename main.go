package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"modernband/internal/backend"
	"modernband/internal/config"
	api "modernband/internal/http"
	"modernband/internal/http/handlers"
	"modernband/internal/services"
	"modernband/internal/session"
	"modernband/internal/storage"
	"modernband/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		utils.Log.WithError(err).Fatal("invalid configuration")
	}
	utils.ConfigureLogger(env.LogLevel, env.LogFormat, os.Stdout)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	} else if env.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	client := backend.NewClient(env.APIURL, env.APITimeout)
	deps := handlers.Deps{
		Env:       env,
		Gateway:   client,
		Bookings:  client,
		Employees: client,
		Admins:    client,
		Backend:   client,
		Wizards:   services.NewMemoryWizardStore(env.WizardTTL),
		Sessions:  session.NewJWTStore(env.SessionSecret, env.SessionTTL, env.Production()),
	}

	if env.R2.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		r2, err := storage.NewR2Client(ctx, storage.R2Config{
			Endpoint:      env.R2.Endpoint,
			AccessKey:     env.R2.AccessKey,
			SecretKey:     env.R2.SecretKey,
			Bucket:        env.R2.Bucket,
			PublicBaseURL: env.R2.PublicBaseURL,
		})
		cancel()
		if err != nil {
			utils.Log.WithError(err).Warn("gallery bucket unavailable, serving bundled gallery")
		} else {
			deps.Media = r2
		}
	}

	r, err := api.NewRouter(env, handlers.New(deps))
	if err != nil {
		utils.Log.WithError(err).Fatal("failed to build router")
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.WithField("addr", env.AppAddr).WithField("api_url", env.APIURL).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.WithError(err).Fatal("shutdown failed")
	}

	utils.Log.Info("server stopped")
}
