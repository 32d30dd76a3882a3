package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/kstage/kstage-go/internal/common/bootstrap"
	dauth "github.com/kstage/kstage-go/internal/directory/auth"
	dconfig "github.com/kstage/kstage-go/internal/directory/config"
)

const shutdownTimeout = 10 * time.Second

// Initialize 는 디렉터리 애플리케이션 의존성을 초기화하고 ServerApp을 반환한다.
func Initialize(ctx context.Context, cfg *dconfig.Config, logger *slog.Logger) (*bootstrap.ServerApp, func(), error) {
	msgProvider, err := newDirectoryMessageProvider()
	if err != nil {
		return nil, nil, err
	}

	db, cleanupDB, err := newDirectoryDB(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	repo, err := newDirectoryRepository(ctx, db)
	if err != nil {
		cleanupDB()
		return nil, nil, err
	}

	popularCache, cleanupCache, err := newDirectoryCache(ctx, cfg, logger)
	if err != nil {
		cleanupDB()
		return nil, nil, err
	}

	verifier := dauth.NewVerifier(cfg.Admin.PasswordHash)

	mux := newDirectoryHTTPMux(repo, popularCache, verifier, msgProvider, logger)
	server := newDirectoryHTTPServer(cfg, mux)

	serverApp := bootstrap.NewServerApp("directory", logger, server, shutdownTimeout)

	cleanup := func() {
		cleanupCache()
		cleanupDB()
	}
	return serverApp, cleanup, nil
}
