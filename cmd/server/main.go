package main

import (
	"fmt"
	"log"

	"asset-registry/internal/config"
	"asset-registry/internal/form"
	"asset-registry/internal/handlers"
	"asset-registry/internal/remote"
	"asset-registry/internal/server"
	"asset-registry/internal/store"
)

func main() {
	cfg := config.Load()

	client := remote.NewClient(cfg.APIBaseURL)
	assetStore := store.New(client, handlers.SessionNotifier{})
	forms := form.NewRegistry()
	assetHandler := handlers.NewAssetHandler(assetStore, forms, cfg.APIBaseURL)

	r := server.NewRouter(cfg, assetHandler)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s (api: %s)", addr, cfg.APIBaseURL)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
