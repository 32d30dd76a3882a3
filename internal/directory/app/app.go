// Package app: 디렉터리 서비스 의존성 구성
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kstage/kstage-go/internal/common/dbutil"
	"github.com/kstage/kstage-go/internal/common/httpserver"
	"github.com/kstage/kstage-go/internal/common/messageprovider"
	"github.com/kstage/kstage-go/internal/common/valkeyx"
	dassets "github.com/kstage/kstage-go/internal/directory/assets"
	dauth "github.com/kstage/kstage-go/internal/directory/auth"
	dconfig "github.com/kstage/kstage-go/internal/directory/config"
	dhttpapi "github.com/kstage/kstage-go/internal/directory/httpapi"
	dredis "github.com/kstage/kstage-go/internal/directory/redis"
	drepo "github.com/kstage/kstage-go/internal/directory/repository"
	dsvc "github.com/kstage/kstage-go/internal/directory/service"
)

func newDirectoryDB(ctx context.Context, cfg *dconfig.Config, logger *slog.Logger) (*gorm.DB, func(), error) {
	openFn := func(ctx context.Context) (*gorm.DB, *sql.DB, error) {
		return openPostgres(ctx, cfg.Postgres)
	}

	db, sqlDB, err := dbutil.OpenWithRetry(ctx, openFn, dbutil.DefaultRetryConfig(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres failed: %w", err)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("db_close_failed", "err", err)
		}
	}
	return db, cleanup, nil
}

func openPostgres(ctx context.Context, cfg dconfig.PostgresConfig) (*gorm.DB, *sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return db, sqlDB, nil
}

func newDirectoryRepository(ctx context.Context, db *gorm.DB) (*drepo.Repository, error) {
	repo := drepo.New(db)
	if err := repo.AutoMigrate(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// newDirectoryCache: 캐시가 활성화된 경우에만 Valkey에 연결한다.
// 비활성화면 (nil, no-op cleanup)을 반환하고 서비스는 저장소 직접 조회로 동작한다.
func newDirectoryCache(ctx context.Context, cfg *dconfig.Config, logger *slog.Logger) (*dredis.PopularStore, func(), error) {
	if !cfg.Cache.Enabled {
		return nil, func() {}, nil
	}

	addr := cfg.Cache.Redis.SocketPath
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port)
	}

	client, err := valkeyx.NewClient(valkeyx.Config{
		Addr:         addr,
		Password:     cfg.Cache.Redis.Password,
		DB:           cfg.Cache.Redis.DB,
		DialTimeout:  cfg.Cache.Redis.DialTimeout,
		ReadTimeout:  cfg.Cache.Redis.ReadTimeout,
		WriteTimeout: cfg.Cache.Redis.WriteTimeout,
		DisableCache: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create valkey client failed: %w", err)
	}

	if err := valkeyx.Ping(ctx, client); err != nil {
		valkeyx.Close(client)
		return nil, nil, fmt.Errorf("valkey ping failed: %w", err)
	}

	logger.Info("popular_cache_connected", "addr", addr, "ttl", cfg.Cache.TTL)

	cleanup := func() { valkeyx.Close(client) }
	return dredis.NewPopularStore(client, cfg.Cache.TTL), cleanup, nil
}

func newDirectoryMessageProvider() (*messageprovider.Provider, error) {
	return messageprovider.NewFromYAML(dassets.ServiceMessagesYAML)
}

func newDirectoryHTTPMux(
	repo *drepo.Repository,
	popularCache *dredis.PopularStore,
	verifier *dauth.Verifier,
	msgProvider *messageprovider.Provider,
	logger *slog.Logger,
) *http.ServeMux {
	translationSync := dsvc.NewTranslationSynchronizer(repo, logger)
	artistService := dsvc.NewArtistService(repo, translationSync, popularCache, logger)
	concertService := dsvc.NewConcertService(repo, logger)
	popularService := dsvc.NewPopularService(repo, popularCache, logger)
	rankSequencer := dsvc.NewRankSequencer(repo, popularCache, logger)

	mux := http.NewServeMux()
	dhttpapi.Register(mux, dhttpapi.PublicServices{
		Artists:  artistService,
		Concerts: concertService,
		Popular:  popularService,
	}, msgProvider, logger)
	dhttpapi.RegisterAdmin(mux, dhttpapi.AdminServices{
		Artists:   artistService,
		Concerts:  concertService,
		Sequencer: rankSequencer,
	}, verifier, msgProvider, logger)

	return mux
}

func newDirectoryHTTPServer(cfg *dconfig.Config, mux *http.ServeMux) *http.Server {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return httpserver.NewServer(addr, mux, httpserver.ServerOptions{
		ReadHeaderTimeout: cfg.ServerTuning.ReadHeaderTimeout,
		IdleTimeout:       cfg.ServerTuning.IdleTimeout,
		MaxHeaderBytes:    cfg.ServerTuning.MaxHeaderBytes,
	})
}
