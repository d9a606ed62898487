package main

import (
	"github.com/ecoba/careers/careers-svc/config"
	"github.com/ecoba/careers/careers-svc/internal/api"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	cfg.ApplyLogLevel()

	if missing := cfg.Validate(); len(missing) > 0 {
		log.Fatalf("missing required config: %v", missing)
	}

	api.StartServer(cfg)
}
