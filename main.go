package main

import (
	"github.com/jobboardhq/jobboard-backend/config"
	"github.com/jobboardhq/jobboard-backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
