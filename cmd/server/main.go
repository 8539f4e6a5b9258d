package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/storepulse/insight-api/internal/api"
	"github.com/storepulse/insight-api/internal/api/handler"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/service"
	"github.com/storepulse/insight-api/internal/core/service/proxy"
	"github.com/storepulse/insight-api/internal/infrastructure/analytics"
	"github.com/storepulse/insight-api/internal/infrastructure/config"
	mongodb "github.com/storepulse/insight-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storepulse/insight-api/internal/infrastructure/db/redis"
	"github.com/storepulse/insight-api/internal/infrastructure/mail"
	"github.com/storepulse/insight-api/internal/infrastructure/oauth"
	"github.com/storepulse/insight-api/internal/infrastructure/queue"
	"github.com/storepulse/insight-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	accounts := mongodb.NewAccountRepository(db)
	stores := mongodb.NewStoreLinkRepository(db)
	notices := mongodb.NewNoticeRepository(db)
	if err := accounts.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}
	if err := stores.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}
	codes := redisdb.NewVerificationStore(rdb)

	// --- Core services ---
	codec, err := idcodec.New(cfg.IDSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("id codec init failed")
	}
	tokens := service.NewTokenService(cfg.JWTSecret, log)

	dispatcher := queue.NewDispatcher(cfg.Mail.Workers, mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}), log)
	dispatcher.Start(ctx)

	kakao := oauth.NewKakaoProvider(oauth.KakaoConfig{
		ClientID:     cfg.Kakao.ClientID,
		ClientSecret: cfg.Kakao.ClientSecret,
		RedirectURL:  cfg.Kakao.RedirectURL,
	})

	authSvc := service.NewAuthService(accounts, stores, tokens, codec, log)
	identitySvc := service.NewIdentityService(accounts, stores, kakao, tokens, codec, log)
	mailSvc := service.NewMailService(accounts, codes, dispatcher, tokens, cfg.FrontendURL, log)
	noticeSvc := service.NewNoticeService(notices)

	upstream := analytics.NewClient(cfg.Analytics.BaseURL, cfg.Analytics.Timeout, log)
	storeProxy := proxy.NewStoreProxy(upstream, codec, stores, log)
	analysisProxy := proxy.NewAnalysisProxy(upstream, codec, log)
	chatProxy := proxy.NewChatProxy(upstream, log)
	locationProxy := proxy.NewLocationProxy(upstream, log)

	// --- HTTP surface ---
	e := api.NewRouter(api.Deps{
		Tokens:   tokens,
		Accounts: accounts,
		Log:      log,

		User:     handler.NewUserHandler(authSvc),
		Mail:     handler.NewMailHandler(mailSvc),
		OAuth:    handler.NewOAuthHandler(identitySvc, cfg.FrontendURL, log),
		Notice:   handler.NewNoticeHandler(noticeSvc, codec),
		Store:    handler.NewStoreHandler(storeProxy, stores, codec),
		Analysis: handler.NewAnalysisHandler(analysisProxy, stores, codec),
		Chat:     handler.NewChatHandler(chatProxy),
		Location: handler.NewLocationHandler(locationProxy),
		Health:   handler.NewHealthHandler(),
		Ready:    handler.NewReadinessHandler(db, rdb),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = e.Close()
	}
}
