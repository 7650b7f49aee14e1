package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"Community_API/internal/config"
	"Community_API/internal/pkg"
	"Community_API/internal/repository/redis"
	"Community_API/internal/repository/store"
	"Community_API/internal/router"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 数据库
	if cfg.Database.Driver == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0o755); err != nil {
			return err
		}
	}
	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(db) }()

	users := store.NewUserRepository(db)
	roles := store.NewRoleRepository(db)
	communities := store.NewCommunityRepository(db)
	members := store.NewCommunityMemberRepository(db)
	outbox := store.NewOutboxRepository(db)

	// Redis 可选，未配置时 token 只做签名和过期校验
	var sessions service.SessionStore
	if cfg.Redis.Enabled() {
		rdb, err := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		sessions = redis.NewSessionRepository(rdb)
	} else {
		logger.Warn("REDIS_ADDR not set, sessions are not tracked")
	}

	var mailer service.Mailer
	if cfg.SMTP.Enabled() {
		mailer = service.NewMailService(cfg.SMTP)
	}

	roleSvc := service.NewRoleService(roles)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := roleSvc.EnsureDefaults(ctx); err != nil {
		return err
	}

	// outbox 投递
	var sender service.Sender = service.LogSender
	if cfg.Kafka.Enabled() {
		producer := pkg.NewKafkaProducer(cfg.Kafka)
		defer func() { _ = producer.Close() }()
		sender = service.KafkaSender(producer)
	}
	relayerDone := make(chan struct{})
	go func() {
		defer close(relayerDone)
		service.NewOutboxRelayer(outbox, sender).Run(ctx)
	}()

	gin.SetMode(gin.ReleaseMode)
	engine := router.InitRouter(router.Deps{
		Auth:         service.NewAuthService(users, pkg.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL), sessions, mailer),
		Access:       service.NewAccessService(members),
		Role:         roleSvc,
		Community:    service.NewCommunityService(communities, members, roles),
		Member:       service.NewMemberService(members, users, communities, roles),
		CookieSecure: cfg.Server.CookieSecure,
		Logger:       logger,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      corsHandler.Handler(engine),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		stop()
		<-relayerDone
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-relayerDone
	logger.Info("server stopped")
	return nil
}
