package main

import (
	"log"

	"github.com/collegevents/backend/cmd/server"
	"github.com/collegevents/backend/internal/adapters/config"
)

func main() {
	cfg := config.Get()

	srv, err := server.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	srv.Start()
}
