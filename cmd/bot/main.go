package main

import (
	"context"
	"flag"
	"log"

	"github.com/grouptab/ledger-bot/internal/app"
)

func main() {
	flag.Parse()

	ctx := context.Background()

	a, err := app.NewApp(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to init app: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("❌ Failed to run app: %v", err)
	}
}
