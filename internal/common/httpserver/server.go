package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Serve: HTTP 서버를 띄우고 ctx 취소 시 진행 중인 요청을 기다린 뒤 내려간다.
// 종료 대기는 shutdownTimeout까지만 허용한다.
func Serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server listen failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server stopped with error: %w", err)
	}
	return nil
}
