package main

import (
	"fitlog/config"
	"fitlog/di"
	"fitlog/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
