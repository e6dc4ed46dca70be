package main

import (
	"log"
	"os"

	"glastor/internal/config"
	"glastor/internal/container"
	"glastor/internal/export"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: export <output.xlsx>")
	}
	outPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer c.Close()

	snap := c.Registry.Snapshot()
	if err := export.WriteReportFile(outPath, snap); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("Wrote %d assignments across %d products to %s",
		len(snap.Assignments), len(snap.Selections), outPath)
}
