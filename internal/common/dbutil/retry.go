package dbutil

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// 디렉터리 서비스 기본값. 컨테이너 기동 직후 DB보다 앱이 먼저 뜨는 경우를 버틴다.
const (
	defaultMaxAttempts = 6
	defaultBaseDelay   = time.Second
	defaultMaxDelay    = 20 * time.Second
)

// RetryConfig: DB 연결 재시도 설정
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration // 첫 재시도 전 대기 시간
	MaxDelay    time.Duration // 대기 시간 상한
}

// DefaultRetryConfig: 기본 재시도 설정
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: defaultMaxAttempts,
		BaseDelay:   defaultBaseDelay,
		MaxDelay:    defaultMaxDelay,
	}
}

// OpenFunc: DB 연결을 시도하는 함수 타입
type OpenFunc func(ctx context.Context) (*gorm.DB, *sql.DB, error)

// OpenWithRetry: 대기 시간을 배로 늘려가며 DB 연결을 재시도한다.
func OpenWithRetry(
	ctx context.Context,
	openFn OpenFunc,
	cfg RetryConfig,
	logger *slog.Logger,
) (*gorm.DB, *sql.DB, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = defaultMaxDelay
	}

	delay := cfg.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		db, sqlDB, err := openFn(ctx)
		if err == nil {
			if attempt > 1 && logger != nil {
				logger.Info("db_connect_success_after_retry", slog.Int("attempts", attempt))
			}
			return db, sqlDB, nil
		}
		lastErr = err

		if attempt == cfg.MaxAttempts {
			break
		}

		if logger != nil {
			logger.Warn("db_connect_retry",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", cfg.MaxAttempts),
				slog.Duration("delay", delay),
				slog.Any("error", err),
			)
		}

		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("db connect cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}

		delay *= 2
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return nil, nil, fmt.Errorf("db connect failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
