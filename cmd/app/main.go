package main

import (
	"hotelpos/config"
	"hotelpos/di"
	"hotelpos/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
