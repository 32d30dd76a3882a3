package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// ServerApp: HTTP 서버와 백그라운드 작업을 묶은 실행 단위입니다.
type ServerApp struct {
	Service         string
	Logger          *slog.Logger
	Server          *http.Server
	ShutdownTimeout time.Duration
	BackgroundTasks []BackgroundTask
}

// NewServerApp: 새로운 ServerApp 인스턴스를 생성한다.
func NewServerApp(
	service string,
	logger *slog.Logger,
	server *http.Server,
	shutdownTimeout time.Duration,
	backgroundTasks ...BackgroundTask,
) *ServerApp {
	return &ServerApp{
		Service:         service,
		Logger:          logger,
		Server:          server,
		ShutdownTimeout: shutdownTimeout,
		BackgroundTasks: backgroundTasks,
	}
}

// Run: 서버와 백그라운드 작업을 실행하고 종료 시그널까지 대기한다.
func (a *ServerApp) Run(ctx context.Context) error {
	if a == nil {
		return nil
	}
	return RunHTTPServer(
		ctx,
		a.Logger,
		a.Service,
		a.Server,
		a.ShutdownTimeout,
		a.BackgroundTasks...,
	)
}
