// Manual module generation script.
//
// The same generation path is exposed over POST /api/modules/generate; this
// script is for trying a topic from the command line without running the
// server.
//
// Usage: go run scripts/generate_module.go -topic "NFT royalties"

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"chainquest_backend/internal/config"
	"chainquest_backend/internal/service"
	"chainquest_backend/pkg/logger"
)

func main() {
	topic := flag.String("topic", "", "topic to generate a learning module for")
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	if *topic == "" {
		log.Fatal("usage: go run scripts/generate_module.go -topic \"<topic>\"")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitLogger(cfg.Server.Mode)

	gen := service.NewGenerationService(cfg.Generation)
	module, err := gen.GenerateModule(context.Background(), *topic)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(module); err != nil {
		log.Fatalf("Failed to print module: %v", err)
	}
}
