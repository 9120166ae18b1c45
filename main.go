package main

import (
	"dogwalking_service/startup"
	"dogwalking_service/startup/config"
)

func main() {
	cfg := config.NewConfig()
	server := startup.NewServer(cfg)
	server.Start()
}
