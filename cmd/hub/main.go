package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/focusin/hub/internal/auth"
	"github.com/focusin/hub/internal/config"
	"github.com/focusin/hub/internal/infra/http/handlers"
	hubmw "github.com/focusin/hub/internal/infra/http/middleware"
	"github.com/focusin/hub/internal/infra/integration/discord"
	"github.com/focusin/hub/internal/infra/integration/gemini"
	"github.com/focusin/hub/internal/infra/integration/notion"
	"github.com/focusin/hub/internal/infra/mail"
	"github.com/focusin/hub/internal/infra/queue"
	"github.com/focusin/hub/internal/infra/store/memory"
	"github.com/focusin/hub/internal/infra/store/postgres"
	redisstore "github.com/focusin/hub/internal/infra/store/redis"
	"github.com/focusin/hub/internal/infra/worker"
	"github.com/focusin/hub/internal/registry"
	"github.com/focusin/hub/internal/usecase"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg)
	defer log.Sync()

	ctx := context.Background()

	// Snapshot store
	store, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatal("snapshot store unavailable", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}

	reg := registry.New(store, log)
	reg.OnPersist(func(err error) {
		if err != nil {
			hubmw.RecordSnapshotWrite("error")
			return
		}
		hubmw.RecordSnapshotWrite("ok")
	})
	reg.Load(ctx)

	// Integrations
	gem, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("gemini client init failed", zap.Error(err))
	}
	notionClient := notion.NewClient(cfg.NotionAPIKey, cfg.NotionTaskDatabase, cfg.NotionBiometricsDB)
	discordClient := discord.NewClient(
		cfg.DiscordCheckInWebhook,
		cfg.DiscordCheckOutWebhook,
		cfg.DiscordSummaryWebhook,
		cfg.DiscordChannelWebhooks,
		log,
	)

	// Queue + worker
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitURL)
	if err != nil {
		log.Fatal("rabbitmq unavailable", zap.Error(err))
	}
	defer rabbitMQ.Close()

	producer := queue.NewProducer(rabbitMQ.Ch)
	notifWorker := queue.NewWorker(rabbitMQ.Ch, discordClient, log)
	go func() {
		if err := notifWorker.Start(queue.QueueName); err != nil {
			log.Error("notification worker stopped", zap.Error(err))
		}
	}()

	mailer := mail.NewDigestSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	authSvc := auth.NewService(credentials(cfg.Users))

	// Use cases
	importUC := usecase.NewImportLeadsUseCase(reg, gem, log)
	digestUC := usecase.NewDigestUseCase(reg, mailer, cfg.DigestTo, log)
	checkInUC := usecase.NewCheckInUseCase(notionClient, producer, log)
	checkOutUC := usecase.NewCheckOutUseCase(notionClient, producer, log)
	attendanceUC := usecase.NewAttendanceLogUseCase(notionClient)
	composeUC := usecase.NewComposeUseCase(gem, discordClient, log)

	// Scheduled digest
	if cfg.DigestIntervalHours > 0 && cfg.DigestTo != "" {
		digestWorker := worker.NewDigestWorker(digestUC, time.Duration(cfg.DigestIntervalHours)*time.Hour, log)
		go digestWorker.Start(ctx)
	}

	// Handlers
	leadHandler := handlers.NewLeadHandler(reg, importUC, digestUC)
	authHandler := handlers.NewAuthHandler(authSvc)
	bioHandler := handlers.NewBiometricsHandler(checkInUC, checkOutUC, attendanceUC)
	composerHandler := handlers.NewComposerHandler(composeUC)
	healthHandler := handlers.NewHealthHandler(store, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(hubmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(hubmw.RequireAuth(authSvc))

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.List)
			r.Post("/", leadHandler.Create)
			r.Get("/export", leadHandler.Export)
			r.Get("/sample", leadHandler.Sample)
			r.Get("/stats", leadHandler.Stats)
			r.With(hubmw.RequireFounder).Post("/import", leadHandler.Import)
			r.Post("/combine", leadHandler.Combine)
			r.Post("/digest", leadHandler.Digest)
			r.Post("/bulk/status", leadHandler.BulkSetStatus)
			r.With(hubmw.RequireFounder).Post("/bulk/delete", leadHandler.BulkDelete)
			r.With(hubmw.RequireFounder).Post("/reset", leadHandler.Reset)
			r.Get("/{id}", leadHandler.Get)
			r.Patch("/{id}", leadHandler.Update)
			r.With(hubmw.RequireFounder).Delete("/{id}", leadHandler.Delete)
			r.Post("/{id}/status", leadHandler.SetStatus)
		})

		r.Route("/biometrics", func(r chi.Router) {
			r.Post("/check-in", bioHandler.CheckIn)
			r.Post("/check-out", bioHandler.CheckOut)
			r.Get("/today", bioHandler.TodayLog)
		})
		r.Get("/tasks", bioHandler.Tasks)

		r.Route("/composer", func(r chi.Router) {
			r.Post("/draft", composerHandler.Draft)
			r.Post("/compose", composerHandler.Compose)
			r.Post("/tone", composerHandler.AdjustTone)
			r.Get("/channels", composerHandler.Channels)
			r.Post("/channels/suggest", composerHandler.SuggestChannels)
			r.Post("/announce", composerHandler.Announce)
		})
	})

	log.Info("Focus-IN hub listening", zap.String("port", cfg.ListenPort))
	if err := http.ListenAndServe(cfg.ListenPort, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func buildStore(ctx context.Context, cfg *config.Config) (registry.SnapshotStore, error) {
	switch cfg.StoreBackend {
	case "postgres":
		db, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		pg := postgres.NewStore(db, cfg.SnapshotKey)
		if err := pg.Migrate(ctx); err != nil {
			return nil, err
		}
		return pg, nil
	case "memory":
		return memory.New(), nil
	default:
		client, err := redisstore.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client, cfg.SnapshotKey), nil
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.PrettyLog {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	log, err := zc.Build()
	if err != nil {
		panic(err)
	}
	return log
}

func credentials(users []config.UserCredential) []auth.Credential {
	creds := make([]auth.Credential, 0, len(users))
	for _, u := range users {
		creds = append(creds, auth.Credential{
			Username: u.Username,
			Password: u.Password,
			Role:     u.Role,
		})
	}
	return creds
}
