package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/alexmorgan/portfolio/internal/config"
	"github.com/alexmorgan/portfolio/internal/contact"
	"github.com/alexmorgan/portfolio/internal/session"
	"github.com/alexmorgan/portfolio/internal/telemetry"
	"github.com/alexmorgan/portfolio/internal/web"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.OTelServiceName)
	if err != nil {
		log.Fatal("Failed to set up tracing: ", err)
	}

	sessions := session.NewStore(cfg.RevealThreshold)
	sweeper, err := sessions.StartSweeper(ctx, cfg.SessionSweepInterval, cfg.SessionTTL)
	if err != nil {
		log.Fatal("Failed to start session sweeper: ", err)
	}

	r, err := web.NewRouter(web.Options{
		Sessions:  sessions,
		Contact:   contact.Stub{Delay: cfg.ContactDelay},
		Threshold: cfg.RevealThreshold,
		ImagesDir: cfg.ImagesDir,
	})
	if err != nil {
		log.Fatal("Failed to build router: ", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("Portfolio listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	sweeper.Stop()
	sessions.Close()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("Error flushing traces: %v", err)
	}
}
