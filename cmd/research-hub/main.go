package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/config"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/httpapi"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/notify"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/search"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store/postgres"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/telemetry"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	shutdownTelemetry := telemetry.Setup(telemetry.Options{
		ServiceName: "research-hub",
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	st := postgres.NewStore(pool, cfg.SessionTTL)

	searcher := search.NewService(
		search.ThesisSource{Store: st},
		search.PublicationSource{Store: st},
		search.DatasetSource{Store: st},
		search.ModelSource{Store: st},
		search.NewProjectSource(),
	)

	handler := httpapi.NewHandler(st, searcher, httpapi.Options{
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.Production(),
	})
	limiter := httpapi.NewRateLimiter(httpapi.RateLimitConfig{
		PerMinute: cfg.RateLimitPerMinute,
		Burst:     cfg.RateLimitBurst,
	})

	chain := httpapi.LoggingMiddleware(
		limiter.Middleware(
			httpapi.RouteGuard(
				httpapi.SessionMiddleware(st, handler.Routes()))))
	otelHandler := otelhttp.NewHandler(chain, "research-hub")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	mailer := notify.NewProvider(notify.ProviderConfig{
		Kind:           cfg.EmailProvider,
		ResendAPIKey:   cfg.ResendAPIKey,
		SendgridAPIKey: cfg.SendgridAPIKey,
		From:           cfg.EmailFrom,
	})
	worker := notify.NewWorker(st, mailer, notify.Config{
		BatchSize:   cfg.NotifyBatchSize,
		MaxAttempts: cfg.NotifyMaxAttempts,
	})
	go notify.Start(workerCtx, cfg.NotifyInterval, worker)

	go func() {
		log.Printf("research-hub listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
