// Package config: 디렉터리 서비스 설정을 환경 변수에서 읽어 구성한다.
package config

import (
	"fmt"
	"strings"
	"time"

	commonconfig "github.com/kstage/kstage-go/internal/common/config"
)

// Config: 디렉터리 서비스 전체 설정
type Config struct {
	Server       commonconfig.ServerConfig
	ServerTuning commonconfig.ServerTuningConfig
	Postgres     PostgresConfig
	Cache        CacheConfig
	Admin        AdminConfig
	Log          commonconfig.LogConfig
}

// PostgresConfig: PostgreSQL 연결 설정
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// CacheConfig: 인기 아티스트 캐시 설정
// Enabled가 false면 Valkey 연결 없이 매 요청 저장소를 조회한다.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Redis   commonconfig.RedisConfig
}

// AdminConfig: 운영자 인증 설정
// PasswordHash는 운영자 패스워드의 SHA-256 16진수 다이제스트이다.
type AdminConfig struct {
	PasswordHash string
}

// LoadFromEnv: 환경 변수에서 전체 설정을 읽어온다.
func LoadFromEnv() (*Config, error) {
	serverConfig, err := commonconfig.ReadServerConfigFromEnv(DefaultServerPort)
	if err != nil {
		return nil, fmt.Errorf("read server config failed: %w", err)
	}

	tuningConfig, err := commonconfig.ReadServerTuningConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read server tuning config failed: %w", err)
	}

	postgresConfig, err := readPostgresConfig()
	if err != nil {
		return nil, fmt.Errorf("read postgres config failed: %w", err)
	}

	cacheConfig, err := readCacheConfig()
	if err != nil {
		return nil, fmt.Errorf("read cache config failed: %w", err)
	}

	adminConfig, err := readAdminConfig()
	if err != nil {
		return nil, fmt.Errorf("read admin config failed: %w", err)
	}

	logConfig, err := commonconfig.ReadLogConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("read log config failed: %w", err)
	}

	return &Config{
		Server:       serverConfig,
		ServerTuning: tuningConfig,
		Postgres:     postgresConfig,
		Cache:        cacheConfig,
		Admin:        adminConfig,
		Log:          logConfig,
	}, nil
}

func readPostgresConfig() (PostgresConfig, error) {
	port, err := commonconfig.IntFromEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return PostgresConfig{}, fmt.Errorf("read POSTGRES_PORT failed: %w", err)
	}

	user := commonconfig.StringFromEnv("POSTGRES_USER", "")
	if user == "" {
		return PostgresConfig{}, fmt.Errorf("POSTGRES_USER is required")
	}

	dbName := commonconfig.StringFromEnv("POSTGRES_DB", "")
	if dbName == "" {
		return PostgresConfig{}, fmt.Errorf("POSTGRES_DB is required")
	}

	return PostgresConfig{
		Host:     commonconfig.StringFromEnv("POSTGRES_HOST", "localhost"),
		Port:     port,
		User:     user,
		Password: commonconfig.StringFromEnv("POSTGRES_PASSWORD", ""),
		DBName:   dbName,
		SSLMode:  commonconfig.StringFromEnv("POSTGRES_SSLMODE", "disable"),
	}, nil
}

func readCacheConfig() (CacheConfig, error) {
	enabled, err := commonconfig.BoolFromEnv("POPULAR_CACHE_ENABLED", false)
	if err != nil {
		return CacheConfig{}, fmt.Errorf("read POPULAR_CACHE_ENABLED failed: %w", err)
	}

	ttl, err := commonconfig.DurationSecondsFromEnv("POPULAR_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return CacheConfig{}, fmt.Errorf("read POPULAR_CACHE_TTL_SECONDS failed: %w", err)
	}

	redisConfig, err := commonconfig.ReadRedisConfigFromEnv(
		[]string{"VALKEY_HOST", "REDIS_HOST"},
		[]string{"VALKEY_PORT", "REDIS_PORT"},
		[]string{"VALKEY_PASSWORD", "REDIS_PASSWORD"},
		[]string{"VALKEY_SOCKET", "REDIS_SOCKET"},
		"localhost",
		6379,
		"",
	)
	if err != nil {
		return CacheConfig{}, fmt.Errorf("read redis config failed: %w", err)
	}

	return CacheConfig{
		Enabled: enabled,
		TTL:     ttl,
		Redis:   redisConfig,
	}, nil
}

func readAdminConfig() (AdminConfig, error) {
	hash := strings.ToLower(commonconfig.StringFromEnv("ADMIN_PASSWORD_HASH", ""))
	if hash == "" {
		return AdminConfig{}, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if len(hash) != 64 {
		return AdminConfig{}, fmt.Errorf("invalid ADMIN_PASSWORD_HASH length: %d", len(hash))
	}

	return AdminConfig{PasswordHash: hash}, nil
}
