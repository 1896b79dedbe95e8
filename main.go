package main

import (
	"rentride_service/startup"
	cfg "rentride_service/startup/config"
)

func main() {
	config := cfg.NewConfig()
	server := startup.NewServer(config)
	server.Start()
}
