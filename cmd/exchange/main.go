package main

import (
	"fmt"
	"os"

	"github.com/denmor86/ya-exchange/internal/app"
	"github.com/denmor86/ya-exchange/internal/config"
	"github.com/denmor86/ya-exchange/internal/logger"
)

func main() {
	// загрузка конфига
	cfg := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}

	if err := app.Run(cfg); err != nil {
		logger.Error("Service stopped with error", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
