package main

import (
	"log"

	"glastor/internal/config"
	"glastor/internal/container"
	"glastor/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer c.Close()

	if cfg.Admin.Enabled {
		admin := ui.NewAdminApp(c.Registry, c.Log)
		go func() {
			if err := admin.Run(cfg.Admin.Port); err != nil {
				c.Log.Error("admin server stopped: %v", err)
			}
		}()
	}

	server := ui.NewServer(ui.Config{GinMode: cfg.Server.GinMode}, c.Testimonials, c.Reviews, c.Log)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
