package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/kstage/kstage-go/internal/common/bootstrap"
	commonconfig "github.com/kstage/kstage-go/internal/common/config"
	"github.com/kstage/kstage-go/internal/common/health"
	dapp "github.com/kstage/kstage-go/internal/directory/app"
	dconfig "github.com/kstage/kstage-go/internal/directory/config"
)

// Version: 빌드 시 ldflags로 주입됨 (예: -ldflags="-X main.Version=1.0.0")
var Version = "dev"

func main() {
	health.Init(Version)

	logger := bootstrap.NewLogger()
	slog.SetDefault(logger)

	finalLogger, err := bootstrap.RunServiceEntrypoint(
		context.Background(),
		logger,
		"kstage.log",
		dconfig.LoadFromEnv,
		func(cfg *dconfig.Config) commonconfig.LogConfig { return cfg.Log },
		dapp.Initialize,
	)
	if err != nil {
		logger = finalLogger
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}
