package main

import (
	"log"

	"github.com/rahul4469/gemini-relay/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Refuse to listen: every request would fail without a key
		log.Fatalf("Error: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
