package config

import (
	"fmt"
	"strings"
	"time"
)

// ReadServerConfigFromEnv: HTTP 서버 호스트와 포트 설정을 환경 변수에서 읽어옵니다.
func ReadServerConfigFromEnv(defaultPort int) (ServerConfig, error) {
	serverPort, err := IntFromEnv("SERVER_PORT", defaultPort)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("read SERVER_PORT failed: %w", err)
	}

	return ServerConfig{
		Host: StringFromEnv("SERVER_HOST", "0.0.0.0"),
		Port: serverPort,
	}, nil
}

// ReadServerTuningConfigFromEnv: HTTP 서버 튜닝 설정(Timeouts, Limits)을 환경 변수에서 읽어옵니다.
func ReadServerTuningConfigFromEnv() (ServerTuningConfig, error) {
	readHeaderTimeout, err := DurationSecondsFromEnv("SERVER_READ_HEADER_TIMEOUT_SECONDS", 5)
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf(
			"read SERVER_READ_HEADER_TIMEOUT_SECONDS failed: %w",
			err,
		)
	}

	idleTimeout, err := DurationSecondsFromEnv("SERVER_IDLE_TIMEOUT_SECONDS", 90)
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf("read SERVER_IDLE_TIMEOUT_SECONDS failed: %w", err)
	}

	maxHeaderBytes, err := IntFromEnv("SERVER_MAX_HEADER_BYTES", 1<<20) // 1MiB
	if err != nil {
		return ServerTuningConfig{}, fmt.Errorf("read SERVER_MAX_HEADER_BYTES failed: %w", err)
	}
	if maxHeaderBytes < 0 {
		return ServerTuningConfig{}, fmt.Errorf("invalid SERVER_MAX_HEADER_BYTES: %d", maxHeaderBytes)
	}

	return ServerTuningConfig{
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}, nil
}

// ReadRedisConfigFromEnv: Redis(Valkey) 연결 설정을 환경 변수에서 읽어옵니다.
// 여러 환경 변수 키 중 첫 번째로 값이 존재하는 것을 사용합니다.
// socketPathKeys가 설정되면 UDS 모드로 동작하며, TCP 설정보다 우선합니다.
func ReadRedisConfigFromEnv(
	hostKeys []string,
	portKeys []string,
	passwordKeys []string,
	socketPathKeys []string,
	defaultHost string,
	defaultPort int,
	defaultPassword string,
) (RedisConfig, error) {
	port, err := IntFromEnvFirstNonEmpty(portKeys, defaultPort)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("read redis port failed: %w", err)
	}

	// UDS 경로가 있으면 UDS 모드, 없으면 TCP 모드
	socketPath := StringFromEnvFirstNonEmpty(socketPathKeys, "")

	return RedisConfig{
		Host:       StringFromEnvFirstNonEmpty(hostKeys, defaultHost),
		Port:       port,
		Password:   StringFromEnvFirstNonEmpty(passwordKeys, defaultPassword),
		DB:         0,
		SocketPath: socketPath,

		DialTimeout:  10 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		PoolSize:     64,
		MinIdleConns: 10,
	}, nil
}

// ReadLogConfigFromEnv: 로그 파일 출력 설정(디렉터리, 크기, 백업 수)을 환경 변수에서 읽어옵니다.
func ReadLogConfigFromEnv() (LogConfig, error) {
	dir := StringFromEnv("LOG_DIR", "")
	if strings.TrimSpace(dir) == "" {
		return LogConfig{Dir: ""}, nil
	}

	maxSizeMB, err := IntFromEnv("LOG_FILE_MAX_SIZE_MB", 1)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_MAX_SIZE_MB failed: %w", err)
	}
	if maxSizeMB <= 0 {
		return LogConfig{}, fmt.Errorf("invalid LOG_FILE_MAX_SIZE_MB: %d", maxSizeMB)
	}

	maxBackups, err := IntFromEnv("LOG_FILE_MAX_BACKUPS", 30)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_MAX_BACKUPS failed: %w", err)
	}
	if maxBackups <= 0 {
		return LogConfig{}, fmt.Errorf("invalid LOG_FILE_MAX_BACKUPS: %d", maxBackups)
	}

	maxAgeDays, err := IntFromEnv("LOG_FILE_MAX_AGE_DAYS", 7)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_MAX_AGE_DAYS failed: %w", err)
	}
	if maxAgeDays <= 0 {
		return LogConfig{}, fmt.Errorf("invalid LOG_FILE_MAX_AGE_DAYS: %d", maxAgeDays)
	}

	compress, err := BoolFromEnv("LOG_FILE_COMPRESS", true)
	if err != nil {
		return LogConfig{}, fmt.Errorf("read LOG_FILE_COMPRESS failed: %w", err)
	}

	return LogConfig{
		Dir:        dir,
		MaxSizeMB:  maxSizeMB,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAgeDays,
		Compress:   compress,
	}, nil
}
