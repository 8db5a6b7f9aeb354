package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/MindOfAhmed/DigitalSociety/internal/blob"
	"github.com/MindOfAhmed/DigitalSociety/internal/citizen"
	jwttoken "github.com/MindOfAhmed/DigitalSociety/internal/jwt_token"
	"github.com/MindOfAhmed/DigitalSociety/internal/notification"
	"github.com/MindOfAhmed/DigitalSociety/internal/notification/relay"
	"github.com/MindOfAhmed/DigitalSociety/internal/photo"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/awsconf"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/config"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/httpserver"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/kafka"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/logger"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/redis"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/tracing"
	"github.com/MindOfAhmed/DigitalSociety/internal/registration"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/httputil"
	authmw "github.com/MindOfAhmed/DigitalSociety/pkg/platform/middleware/auth"
	request "github.com/MindOfAhmed/DigitalSociety/pkg/platform/middleware/request"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/middleware/requesttime"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

const serviceName = "digital-society"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// --- Infrastructure ---

	st, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("stores: %w", err)
	}
	defer func() { _ = st.Close() }()
	log.Info("stores ready", "postgres", cfg.UsePostgres())

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	awsCfg, err := awsconf.Load(ctx, cfg.AWS)
	if err != nil {
		return fmt.Errorf("aws: %w", err)
	}

	var blobs blob.Store
	if cfg.Blob.S3Bucket != "" {
		blobs = blob.NewS3Store(awsCfg, cfg.Blob.S3Bucket)
	} else if blobs, err = blob.NewFileStore(cfg.Blob.Dir); err != nil {
		return fmt.Errorf("blob store: %w", err)
	}

	faces, err := newDetector(ctx, cfg.FaceDetector, awsCfg, rdb, m, log)
	if err != nil {
		return err
	}

	// --- Services ---

	notifier := notification.NewService(st.notifications, notification.WithLogger(log))
	photos := photo.NewValidator(faces, photo.WithLogger(log), photo.WithMetrics(m))
	renewals := renewal.NewService(st.renewals, st.records, photos, notifier, blobs, st.tx,
		renewal.WithLogger(log), renewal.WithMetrics(m))
	registrations := registration.NewService(st.registrations, st.records, notifier, blobs, st.tx,
		registration.WithLogger(log), registration.WithMetrics(m))
	views := citizen.NewService(st.records, notifier, renewals, registrations)

	// --- HTTP ---

	validator := jwttoken.NewJWTServiceAdapter(jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer))
	renewalHandler := renewal.NewHandler(renewals, log)
	registrationHandler := registration.NewHandler(registrations, log)
	citizenHandler := citizen.NewHandler(views, log)

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Recovery(log))
	r.Use(request.Logger(log))
	r.Use(request.Timeout(30 * time.Second))
	r.Use(requesttime.Middleware)

	r.Get("/healthz", healthHandler(st, rdb))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(validator, log))
		r.Use(authmw.RequireRole(requestcontext.RoleCitizen, log))
		renewalHandler.RegisterCitizenRoutes(r)
		registrationHandler.RegisterCitizenRoutes(r)
		citizenHandler.RegisterRoutes(r)
	})
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(validator, log))
		r.Use(authmw.RequireRole(requestcontext.RoleInspector, log))
		renewalHandler.RegisterInspectorRoutes(r)
		registrationHandler.RegisterInspectorRoutes(r)
	})

	srv := httpserver.New(cfg.Addr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.UseKafka() {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka, 3, 1); err != nil {
			return fmt.Errorf("kafka topic: %w", err)
		}
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka: %w", err)
		}
		defer producer.Close()
		worker := relay.NewWorker(st.notifications, producer,
			relay.WithInterval(cfg.Kafka.RelayInterval),
			relay.WithBatchSize(cfg.Kafka.RelayBatchSize),
			relay.WithTx(st.tx),
			relay.WithLogger(log),
			relay.WithMetrics(m),
		)
		g.Go(func() error { return worker.Run(gctx) })
		log.Info("notification relay started", "topic", cfg.Kafka.NotificationTopic)
	}

	return g.Wait()
}

func healthHandler(st *stores, rdb *redis.Client) http.HandlerFunc {
	type healthStatus struct {
		Status   string `json:"status"`
		Postgres string `json:"postgres,omitempty"`
		Redis    string `json:"redis,omitempty"`
	}
	check := func(err error) string {
		if err != nil {
			return "unavailable"
		}
		return "ok"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{Status: "ok"}
		code := http.StatusOK
		if st.db != nil {
			err := st.db.PingContext(r.Context())
			status.Postgres = check(err)
			if err != nil {
				code = http.StatusServiceUnavailable
			}
		}
		if rdb != nil {
			err := rdb.Health(r.Context())
			status.Redis = check(err)
			if err != nil {
				code = http.StatusServiceUnavailable
			}
		}
		if code != http.StatusOK {
			status.Status = "degraded"
		}
		httputil.WriteJSON(w, code, status)
	}
}
